package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/shared/config"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth         service.AuthService
	topic        service.TopicService
	post         service.PostService
	vote         service.VoteService
	comment      service.CommentService
	favorite     service.FavoriteService
	userActivity service.UserActivityService
	health       HealthChecker
	cfg          *config.Config
}

type Services struct {
	Auth         service.AuthService
	Topic        service.TopicService
	Post         service.PostService
	Vote         service.VoteService
	Comment      service.CommentService
	Favorite     service.FavoriteService
	UserActivity service.UserActivityService
}

func New(services Services, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:         services.Auth,
		topic:        services.Topic,
		post:         services.Post,
		vote:         services.Vote,
		comment:      services.Comment,
		favorite:     services.Favorite,
		userActivity: services.UserActivity,
		health:       health,
		cfg:          cfg,
	}
}

// idParam reads a positive integer url parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, internal_errors.BadRequest(fmt.Sprintf("invalid %s id: must be a positive integer", name))
	}
	return id, nil
}
