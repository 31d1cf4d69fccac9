package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// AddFavorite marks the post as a favorite of the user. Doing it twice is a Conflict.
func (s *Storage) AddFavorite(ctx context.Context, userId domain.UserId, postId domain.PostId) (domain.Favorite, error) {
	fav := domain.Favorite{UserId: userId, PostId: postId}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO favorites (user_id, post_id) VALUES ($1, $2) RETURNING id, created_at`,
		userId, postId,
	).Scan(&fav.Id, &fav.CreatedAt)
	if err != nil {
		if notFound := missingReference(err); notFound != nil {
			return domain.Favorite{}, notFound
		}
		if _, ok := sharedpg.UniqueViolation(err); ok {
			return domain.Favorite{}, internal_errors.Conflict("Post is already in favorites")
		}
		return domain.Favorite{}, fmt.Errorf("failed to insert favorite: %w", err)
	}
	return fav, nil
}

func (s *Storage) RemoveFavorite(ctx context.Context, userId domain.UserId, postId domain.PostId) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND post_id = $2`, userId, postId)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return requireAffected(result, "Favorite not found")
}
