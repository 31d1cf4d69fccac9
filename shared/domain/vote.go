package domain

import "time"

type VoteValue int

const (
	Upvote   VoteValue = 1
	Downvote VoteValue = -1
)

func (v VoteValue) Valid() bool {
	return v == Upvote || v == Downvote
}

func (v VoteValue) Direction() string {
	switch v {
	case Upvote:
		return "up"
	case Downvote:
		return "down"
	default:
		return "invalid"
	}
}

type VoteCreationData struct {
	UserId UserId
	PostId PostId
	Value  VoteValue
}

// Vote is a single ledger entry. Entries are never updated, a changed mind is a new entry.
type Vote struct {
	Id        VoteId    `json:"id"`
	Value     VoteValue `json:"value"`
	UserId    UserId    `json:"user_id"`
	PostId    PostId    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
