package setup

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/service/utils"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *mw.Auth
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Build(storage, cfg), nil
}

// Build wires services and handlers on top of an opened storage.
func Build(storage *pg.Storage, cfg *config.Config) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	text := utils.NewTextProcessor()

	services := handler.Services{
		Auth:         service.NewAuth(storage, jwtService),
		Topic:        service.NewTopic(storage, text, &cfg.Public),
		Post:         service.NewPost(storage, text),
		Vote:         service.NewVote(storage),
		Comment:      service.NewComment(storage, text),
		Favorite:     service.NewFavorite(storage),
		UserActivity: service.NewUserActivity(storage, &cfg.Public),
	}

	return &Dependencies{
		Storage:        storage,
		Handler:        handler.New(services, storage, cfg),
		Jwt:            jwtService,
		AuthMiddleware: mw.NewAuth(jwtService),
		Config:         cfg,
	}
}
