package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type TopicCreationData struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Posts       []NestedPostData `json:"posts" validate:"dive"`
}

// NestedPostData is a post created together with its topic.
type NestedPostData struct {
	Title  PostTitle `json:"title" validate:"required"`
	Body   PostBody  `json:"body" validate:"required"`
	UserId UserId    `json:"user_id" validate:"required"`
}

type Topic struct {
	Id          TopicId   `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Posts       []Post    `json:"posts"`
}
