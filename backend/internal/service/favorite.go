package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type FavoriteService interface {
	Add(ctx context.Context, userId domain.UserId, postId domain.PostId) (domain.Favorite, error)
	Remove(ctx context.Context, userId domain.UserId, postId domain.PostId) error
}

type Favorite struct {
	storage FavoriteStorage
}

type FavoriteStorage interface {
	AddFavorite(ctx context.Context, userId domain.UserId, postId domain.PostId) (domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userId domain.UserId, postId domain.PostId) error
}

func NewFavorite(storage FavoriteStorage) FavoriteService {
	return &Favorite{storage: storage}
}

func (s *Favorite) Add(ctx context.Context, userId domain.UserId, postId domain.PostId) (domain.Favorite, error) {
	return s.storage.AddFavorite(ctx, userId, postId)
}

func (s *Favorite) Remove(ctx context.Context, userId domain.UserId, postId domain.PostId) error {
	return s.storage.RemoveFavorite(ctx, userId, postId)
}
