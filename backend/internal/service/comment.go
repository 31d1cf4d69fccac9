package service

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/service/utils"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/validation"
)

type CommentService interface {
	Create(ctx context.Context, data domain.CommentCreationData) (domain.CommentId, error)
	Delete(ctx context.Context, id domain.CommentId, actor domain.UserId) error
}

type Comment struct {
	storage CommentStorage
	text    *utils.TextProcessor
}

type CommentStorage interface {
	CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.CommentId, error)
	Comment(ctx context.Context, id domain.CommentId) (domain.Comment, error)
	DeleteComment(ctx context.Context, id domain.CommentId) error
}

func NewComment(storage CommentStorage, text *utils.TextProcessor) CommentService {
	return &Comment{storage: storage, text: text}
}

func (s *Comment) Create(ctx context.Context, data domain.CommentCreationData) (domain.CommentId, error) {
	data.Body = s.text.Clean(data.Body)
	if err := validation.Struct(data); err != nil {
		return 0, err
	}
	return s.storage.CreateComment(ctx, data)
}

// Delete removes the comment if actor wrote it.
func (s *Comment) Delete(ctx context.Context, id domain.CommentId, actor domain.UserId) error {
	comment, err := s.storage.Comment(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserId != actor {
		return internal_errors.Forbidden("Only the author can delete this comment")
	}
	return s.storage.DeleteComment(ctx, id)
}
