package service

import (
	"context"
	"fmt"
	"time"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
	"golang.org/x/sync/errgroup"
)

// UserActivityService assembles user profiles
type UserActivityService interface {
	GetUserProfile(ctx context.Context, userId domain.UserId) (*domain.UserProfile, error)
}

// UserActivity implements UserActivityService
type UserActivity struct {
	storage UserActivityStorage
	cfg     *config.Public
}

// UserActivityStorage must be safe for concurrent use, the three activity
// queries are issued at the same time.
type UserActivityStorage interface {
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	RecentPostsByUser(ctx context.Context, userId domain.UserId, limit int) ([]domain.Post, error)
	RecentCommentsByUser(ctx context.Context, userId domain.UserId, limit int) ([]domain.Comment, error)
	FavoritesByUser(ctx context.Context, userId domain.UserId) ([]domain.Favorite, error)
}

func NewUserActivity(storage UserActivityStorage, cfg *config.Public) UserActivityService {
	return &UserActivity{
		storage: storage,
		cfg:     cfg,
	}
}

// GetUserProfile looks the user up first, an unknown user is NotFound and no
// activity query is issued. Recent posts, recent comments and favorites are
// then fetched concurrently. The first failure cancels the others and is
// returned, a partial profile is never produced.
func (s *UserActivity) GetUserProfile(ctx context.Context, userId domain.UserId) (*domain.UserProfile, error) {
	start := time.Now()
	defer func() { profileAssemblyDuration.Observe(time.Since(start).Seconds()) }()

	user, err := s.storage.User(ctx, userId)
	if err != nil {
		return nil, err
	}

	var (
		posts     []domain.Post
		comments  []domain.Comment
		favorites []domain.Favorite
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.storage.RecentPostsByUser(gctx, userId, s.cfg.RecentPostsLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent posts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		comments, err = s.storage.RecentCommentsByUser(gctx, userId, s.cfg.RecentCommentsLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent comments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		favorites, err = s.storage.FavoritesByUser(gctx, userId)
		if err != nil {
			return fmt.Errorf("failed to get favorites: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Warn("profile assembly failed", "user_id", userId, "error", err)
		return nil, err
	}

	return &domain.UserProfile{
		User:           user,
		RecentPosts:    nonNil(posts),
		RecentComments: nonNil(comments),
		Favorites:      nonNil(favorites),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
