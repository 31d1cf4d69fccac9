package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

const postColumns = `id, title, body, topic_id, user_id, created_at`

// CreatePost inserts a post. A missing topic or user is a NotFound.
func (s *Storage) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.PostId, error) {
	return s.createPost(ctx, s.db, data)
}

// Post fetches a post without its votes.
func (s *Storage) Post(ctx context.Context, id domain.PostId) (domain.Post, error) {
	return s.post(ctx, s.db, id)
}

// GetPostWithVotes loads the post and every vote referencing it from one snapshot,
// so the engagement computed from it is consistent.
func (s *Storage) GetPostWithVotes(ctx context.Context, id domain.PostId) (domain.Post, error) {
	var post domain.Post
	err := sharedpg.WithTx(ctx, s.db, sharedpg.ReadOnly, func(tx *sql.Tx) error {
		var err error
		post, err = s.post(ctx, tx, id)
		if err != nil {
			return err
		}
		post.Votes, err = s.votesForPost(ctx, tx, id)
		return err
	})
	return post, err
}

// MovePost reassigns the post to another topic. Both must exist.
func (s *Storage) MovePost(ctx context.Context, id domain.PostId, topicId domain.TopicId) error {
	return s.updatePostRef(ctx, s.db, `UPDATE posts SET topic_id = $2 WHERE id = $1`, id, topicId)
}

// ReassignPost changes the owner of the post. Both must exist.
func (s *Storage) ReassignPost(ctx context.Context, id domain.PostId, userId domain.UserId) error {
	return s.updatePostRef(ctx, s.db, `UPDATE posts SET user_id = $2 WHERE id = $1`, id, userId)
}

// DeletePost removes the post together with its votes, comments and favorites.
func (s *Storage) DeletePost(ctx context.Context, id domain.PostId) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return requireAffected(result, "Post not found")
}

func (s *Storage) createPost(ctx context.Context, q sharedpg.Querier, data domain.PostCreationData) (domain.PostId, error) {
	var id domain.PostId
	err := q.QueryRowContext(ctx,
		`INSERT INTO posts (title, body, topic_id, user_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		data.Title, data.Body, data.TopicId, data.UserId,
	).Scan(&id)
	if err != nil {
		if notFound := missingReference(err); notFound != nil {
			return 0, notFound
		}
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}
	return id, nil
}

func (s *Storage) post(ctx context.Context, q sharedpg.Querier, id domain.PostId) (domain.Post, error) {
	var p domain.Post
	err := q.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id,
	).Scan(&p.Id, &p.Title, &p.Body, &p.TopicId, &p.UserId, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	return p, nil
}

// updatePostRef runs a single row update whose new value is a foreign key.
// The constraint check and the update happen in one statement.
func (s *Storage) updatePostRef(ctx context.Context, q sharedpg.Querier, query string, id domain.PostId, ref int64) error {
	result, err := q.ExecContext(ctx, query, id, ref)
	if err != nil {
		if notFound := missingReference(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("failed to update post: %w", err)
	}
	return requireAffected(result, "Post not found")
}

func requireAffected(result sql.Result, notFoundMessage string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return internal_errors.NotFound(notFoundMessage)
	}
	return nil
}

func scanPosts(rows *sql.Rows) ([]domain.Post, error) {
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.Id, &p.Title, &p.Body, &p.TopicId, &p.UserId, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}
