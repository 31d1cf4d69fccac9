package service

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/service/utils"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/validation"
)

type TopicService interface {
	Create(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error)
	Get(ctx context.Context, id domain.TopicId) (domain.Topic, error)
}

type Topic struct {
	storage TopicStorage
	text    *utils.TextProcessor
	cfg     *config.Public
}

type TopicStorage interface {
	CreateTopic(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error)
	GetTopic(ctx context.Context, id domain.TopicId, postsLimit int) (domain.Topic, error)
}

func NewTopic(storage TopicStorage, text *utils.TextProcessor, cfg *config.Public) TopicService {
	return &Topic{storage: storage, text: text, cfg: cfg}
}

// Create stores the topic and its initial posts in one transaction.
func (s *Topic) Create(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	data.Title = s.text.Clean(data.Title)
	data.Description = s.text.Clean(data.Description)
	for i := range data.Posts {
		data.Posts[i].Title = s.text.Clean(data.Posts[i].Title)
		data.Posts[i].Body = s.text.Clean(data.Posts[i].Body)
	}
	if err := validation.Struct(data); err != nil {
		return 0, err
	}
	return s.storage.CreateTopic(ctx, data)
}

func (s *Topic) Get(ctx context.Context, id domain.TopicId) (domain.Topic, error) {
	return s.storage.GetTopic(ctx, id, s.cfg.TopicPostsLimit)
}
