package domain

import "time"

type PostCreationData struct {
	Title   PostTitle `json:"title" validate:"required"`
	Body    PostBody  `json:"body" validate:"required"`
	TopicId TopicId   `json:"topic_id" validate:"required"`
	UserId  UserId    `json:"user_id" validate:"required"`
}

type Post struct {
	Id        PostId    `json:"id"`
	Title     PostTitle `json:"title"`
	Body      PostBody  `json:"body"`
	TopicId   TopicId   `json:"topic_id"`
	UserId    UserId    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	// Votes is only populated when the caller asked for it, see Storage.GetPostWithVotes
	Votes []Vote `json:"-"`
}
