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

// CreateTopic inserts the topic and its nested posts atomically.
func (s *Storage) CreateTopic(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	var id domain.TopicId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.createTopic(ctx, tx, data)
		if err != nil {
			return err
		}
		for _, p := range data.Posts {
			_, err := s.createPost(ctx, tx, domain.PostCreationData{
				Title:   p.Title,
				Body:    p.Body,
				TopicId: id,
				UserId:  p.UserId,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return id, err
}

// GetTopic returns the topic with up to postsLimit of its newest posts.
func (s *Storage) GetTopic(ctx context.Context, id domain.TopicId, postsLimit int) (domain.Topic, error) {
	var topic domain.Topic
	err := sharedpg.WithTx(ctx, s.db, sharedpg.ReadOnly, func(tx *sql.Tx) error {
		var err error
		topic, err = s.getTopic(ctx, tx, id)
		if err != nil {
			return err
		}
		topic.Posts, err = s.topicPosts(ctx, tx, id, postsLimit)
		return err
	})
	return topic, err
}

func (s *Storage) createTopic(ctx context.Context, q sharedpg.Querier, data domain.TopicCreationData) (domain.TopicId, error) {
	var id domain.TopicId
	err := q.QueryRowContext(ctx,
		`INSERT INTO topics (title, description) VALUES ($1, $2) RETURNING id`,
		data.Title, data.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert topic: %w", err)
	}
	return id, nil
}

func (s *Storage) getTopic(ctx context.Context, q sharedpg.Querier, id domain.TopicId) (domain.Topic, error) {
	var topic domain.Topic
	err := q.QueryRowContext(ctx,
		`SELECT id, title, description, created_at FROM topics WHERE id = $1`, id,
	).Scan(&topic.Id, &topic.Title, &topic.Description, &topic.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Topic{}, internal_errors.NotFound("Topic not found")
		}
		return domain.Topic{}, fmt.Errorf("failed to query topic: %w", err)
	}
	return topic, nil
}

func (s *Storage) topicPosts(ctx context.Context, q sharedpg.Querier, id domain.TopicId, limit int) ([]domain.Post, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, title, body, topic_id, user_id, created_at
		FROM posts
		WHERE topic_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topic posts: %w", err)
	}
	return scanPosts(rows)
}
