package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

const commentColumns = `id, body, post_id, user_id, created_at`

func (s *Storage) CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.CommentId, error) {
	var id domain.CommentId
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO comments (body, post_id, user_id) VALUES ($1, $2, $3) RETURNING id`,
		data.Body, data.PostId, data.UserId,
	).Scan(&id)
	if err != nil {
		if notFound := missingReference(err); notFound != nil {
			return 0, notFound
		}
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}
	return id, nil
}

func (s *Storage) Comment(ctx context.Context, id domain.CommentId) (domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id,
	).Scan(&c.Id, &c.Body, &c.PostId, &c.UserId, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NotFound("Comment not found")
		}
		return domain.Comment{}, fmt.Errorf("failed to query comment: %w", err)
	}
	return c, nil
}

// CommentsForPost returns every comment on the post, oldest first.
func (s *Storage) CommentsForPost(ctx context.Context, postId domain.PostId) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at, id
	`, postId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post comments: %w", err)
	}
	return scanComments(rows)
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireAffected(result, "Comment not found")
}

func scanComments(rows *sql.Rows) ([]domain.Comment, error) {
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.Body, &c.PostId, &c.UserId, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}
