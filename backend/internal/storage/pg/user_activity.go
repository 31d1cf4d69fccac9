package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
)

// The queries below back a user profile. Each is independent and safe to run
// concurrently. They return an empty slice, never nil, for a user with no activity,
// and do not check that the user exists.

// RecentPostsByUser returns the user's newest posts, newest first.
// Ties on created_at are broken by id so the order is total.
func (s *Storage) RecentPostsByUser(ctx context.Context, userId domain.UserId, limit int) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userId, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user posts: %w", err)
	}
	return scanPosts(rows)
}

// RecentCommentsByUser returns the user's newest comments, newest first.
func (s *Storage) RecentCommentsByUser(ctx context.Context, userId domain.UserId, limit int) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userId, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user comments: %w", err)
	}
	return scanComments(rows)
}

// FavoritesByUser returns every favorite of the user in the order they were added.
func (s *Storage) FavoritesByUser(ctx context.Context, userId domain.UserId) ([]domain.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, user_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY id
	`, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user favorites: %w", err)
	}
	defer rows.Close()

	favorites := []domain.Favorite{}
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.Id, &f.PostId, &f.UserId, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}
	return favorites, nil
}
