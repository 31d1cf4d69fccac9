package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

type VoteService interface {
	Cast(ctx context.Context, data domain.VoteCreationData) (domain.Vote, error)
}

type Vote struct {
	storage VoteStorage
}

type VoteStorage interface {
	CastVote(ctx context.Context, data domain.VoteCreationData) (domain.Vote, error)
}

func NewVote(storage VoteStorage) VoteService {
	return &Vote{storage: storage}
}

// Cast appends a vote. Every problem with the input is reported at once and
// nothing is written unless the input is valid. A user or post that does not
// exist is reported by storage as a ValidationError as well.
func (s *Vote) Cast(ctx context.Context, data domain.VoteCreationData) (domain.Vote, error) {
	verr := &internal_errors.ValidationError{}
	if data.UserId <= 0 {
		verr.Add("user_id is required")
	}
	if data.PostId <= 0 {
		verr.Add("post_id is required")
	}
	if !data.Value.Valid() {
		verr.Add("value must be 1 or -1")
	}
	if err := verr.Err(); err != nil {
		return domain.Vote{}, err
	}

	vote, err := s.storage.CastVote(ctx, data)
	if err != nil {
		return domain.Vote{}, err
	}
	votesCastTotal.WithLabelValues(vote.Value.Direction()).Inc()
	logger.FromContext(ctx).Debug("vote cast", "post_id", vote.PostId, "user_id", vote.UserId, "direction", vote.Value.Direction())
	return vote, nil
}
