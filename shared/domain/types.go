package domain

type (
	Email    = string
	Password = string

	UserId     = int64
	TopicId    = int64
	PostId     = int64
	VoteId     = int64
	CommentId  = int64
	FavoriteId = int64

	PostTitle   = string
	PostBody    = string
	CommentBody = string
)
