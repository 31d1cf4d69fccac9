package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/forum/backend/internal/setup"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
	rl "github.com/itchan-dev/forum/shared/middleware/ratelimiter"
)

// Router owns the rate limiters it creates, call Stop on shutdown.
type Router struct {
	chi.Router
	limiters []*rl.UserRateLimiter
}

func (r *Router) Stop() {
	for _, l := range r.limiters {
		l.Stop()
	}
}

func (r *Router) limiter(l *rl.UserRateLimiter) *rl.UserRateLimiter {
	r.limiters = append(r.limiters, l)
	return l
}

// New creates the api router.
// Rate limiters attached with Use count requests of every route in that group together.
func New(deps *setup.Dependencies) *Router {
	r := &Router{Router: chi.NewRouter()}
	cfg := deps.Config.Public

	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.SecureCookies))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/auth", func(auth chi.Router) {
			auth.With(mw.RateLimit(r.limiter(rl.PerMinute(5)), mw.GetIP)).Post("/register", h.Register)
			auth.With(mw.RateLimit(r.limiter(rl.OnceInSecond()), mw.GetIP)).Post("/login", h.Login)
			auth.Post("/logout", h.Logout)
		})

		// Public reads
		v1.Get("/topics/{topic}", h.GetTopic)
		v1.Get("/users/{user}", h.GetUserProfile)
		v1.With(authMw.OptionalAuth()).Get("/posts/{post}", h.GetPost)

		// Logged-in user routes
		v1.Group(func(loggedIn chi.Router) {
			loggedIn.Use(authMw.NeedAuth())
			loggedIn.Use(mw.RateLimit(r.limiter(rl.New(100, 100, time.Hour)), mw.GetUserIdentity)) // 100 RPS per user

			loggedIn.Post("/topics", h.CreateTopic)
			loggedIn.Post("/topics/{topic}/posts", h.CreatePost)

			loggedIn.Put("/posts/{post}/topic", h.MovePost)
			loggedIn.Put("/posts/{post}/owner", h.ReassignPost)
			loggedIn.Delete("/posts/{post}", h.DeletePost)

			loggedIn.With(mw.RateLimit(r.limiter(rl.PerMinute(cfg.VotesPerMinute)), mw.GetUserIdentity)).
				Post("/posts/{post}/votes", h.CastVote)

			loggedIn.Post("/posts/{post}/comments", h.CreateComment)
			loggedIn.Delete("/comments/{comment}", h.DeleteComment)

			loggedIn.Post("/posts/{post}/favorite", h.AddFavorite)
			loggedIn.Delete("/posts/{post}/favorite", h.RemoveFavorite)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})

	return r
}
