package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// CastVote appends one entry to the ledger. Nothing is deduplicated: the same
// user may vote on the same post any number of times.
//
// A user or post that does not exist is a ValidationError, detected by the
// insert itself so a concurrent delete can not slip in between.
func (s *Storage) CastVote(ctx context.Context, data domain.VoteCreationData) (domain.Vote, error) {
	return s.castVote(ctx, s.db, data)
}

func (s *Storage) castVote(ctx context.Context, q sharedpg.Querier, data domain.VoteCreationData) (domain.Vote, error) {
	vote := domain.Vote{Value: data.Value, UserId: data.UserId, PostId: data.PostId}
	err := q.QueryRowContext(ctx,
		`INSERT INTO votes (value, user_id, post_id) VALUES ($1, $2, $3) RETURNING id, created_at`,
		data.Value, data.UserId, data.PostId,
	).Scan(&vote.Id, &vote.CreatedAt)
	if err != nil {
		if constraint, ok := sharedpg.ForeignKeyViolation(err); ok {
			return domain.Vote{}, voteReferenceError(constraint)
		}
		if _, ok := sharedpg.CheckViolation(err); ok {
			return domain.Vote{}, &internal_errors.ValidationError{Problems: []string{"value must be 1 or -1"}}
		}
		return domain.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}
	return vote, nil
}

func voteReferenceError(constraint string) error {
	switch constraint {
	case "votes_user_id_fkey":
		return &internal_errors.ValidationError{Problems: []string{"user does not exist"}}
	case "votes_post_id_fkey":
		return &internal_errors.ValidationError{Problems: []string{"post does not exist"}}
	default:
		return &internal_errors.ValidationError{Problems: []string{"vote references a missing row"}}
	}
}

func (s *Storage) votesForPost(ctx context.Context, q sharedpg.Querier, postId domain.PostId) ([]domain.Vote, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, value, user_id, post_id, created_at
		FROM votes
		WHERE post_id = $1
		ORDER BY id
	`, postId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch votes: %w", err)
	}
	defer rows.Close()

	votes := []domain.Vote{}
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.Id, &v.Value, &v.UserId, &v.PostId, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}
