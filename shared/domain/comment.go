package domain

import "time"

type CommentCreationData struct {
	Body   CommentBody `json:"body" validate:"required"`
	PostId PostId      `json:"post_id" validate:"required"`
	UserId UserId      `json:"user_id" validate:"required"`
}

type Comment struct {
	Id        CommentId   `json:"id"`
	Body      CommentBody `json:"body"`
	PostId    PostId      `json:"post_id"`
	UserId    UserId      `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
}
