package service

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/service/utils"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/validation"
)

type PostService interface {
	Create(ctx context.Context, data domain.PostCreationData) (domain.PostId, error)
	Get(ctx context.Context, id domain.PostId, viewer *domain.UserId) (*api.PostResponse, error)
	MoveToTopic(ctx context.Context, id domain.PostId, topicId domain.TopicId, actor domain.UserId) error
	ReassignOwner(ctx context.Context, id domain.PostId, userId domain.UserId, actor domain.UserId) error
	Delete(ctx context.Context, id domain.PostId, actor domain.UserId) error
}

type Post struct {
	storage PostStorage
	text    *utils.TextProcessor
}

type PostStorage interface {
	CreatePost(ctx context.Context, data domain.PostCreationData) (domain.PostId, error)
	Post(ctx context.Context, id domain.PostId) (domain.Post, error)
	GetPostWithVotes(ctx context.Context, id domain.PostId) (domain.Post, error)
	CommentsForPost(ctx context.Context, id domain.PostId) ([]domain.Comment, error)
	MovePost(ctx context.Context, id domain.PostId, topicId domain.TopicId) error
	ReassignPost(ctx context.Context, id domain.PostId, userId domain.UserId) error
	DeletePost(ctx context.Context, id domain.PostId) error
}

func NewPost(storage PostStorage, text *utils.TextProcessor) PostService {
	return &Post{storage: storage, text: text}
}

// Create cleans title and body, then validates. A post missing several fields
// is rejected with all of them listed.
func (s *Post) Create(ctx context.Context, data domain.PostCreationData) (domain.PostId, error) {
	data.Title = s.text.Clean(data.Title)
	data.Body = s.text.Clean(data.Body)
	if err := validation.Struct(data); err != nil {
		return 0, err
	}
	return s.storage.CreatePost(ctx, data)
}

// Get returns the post with its score, the viewer's vote directions and its comments.
// viewer is nil for anonymous requests.
func (s *Post) Get(ctx context.Context, id domain.PostId, viewer *domain.UserId) (*api.PostResponse, error) {
	post, err := s.storage.GetPostWithVotes(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.storage.CommentsForPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &api.PostResponse{
		PostWithEngagement: domain.PostWithEngagement{
			Post:       post,
			BodyHTML:   s.text.Render(post.Body),
			Engagement: post.Engagement(viewer),
		},
		Comments: comments,
	}, nil
}

// MoveToTopic fails with NotFound when either the post or the topic is missing
// and with Forbidden when actor is not the author.
func (s *Post) MoveToTopic(ctx context.Context, id domain.PostId, topicId domain.TopicId, actor domain.UserId) error {
	if err := s.requireAuthor(ctx, id, actor); err != nil {
		return err
	}
	return s.storage.MovePost(ctx, id, topicId)
}

// ReassignOwner hands the post over to userId. Only the current author may do it.
func (s *Post) ReassignOwner(ctx context.Context, id domain.PostId, userId domain.UserId, actor domain.UserId) error {
	if err := s.requireAuthor(ctx, id, actor); err != nil {
		return err
	}
	return s.storage.ReassignPost(ctx, id, userId)
}

func (s *Post) Delete(ctx context.Context, id domain.PostId, actor domain.UserId) error {
	if err := s.requireAuthor(ctx, id, actor); err != nil {
		return err
	}
	return s.storage.DeletePost(ctx, id)
}

func (s *Post) requireAuthor(ctx context.Context, id domain.PostId, actor domain.UserId) error {
	post, err := s.storage.Post(ctx, id)
	if err != nil {
		return err
	}
	if post.UserId != actor {
		return internal_errors.Forbidden("Only the author can modify this post")
	}
	return nil
}
