package api

import "github.com/itchan-dev/forum/shared/domain"

// Request DTOs shared by handlers and API clients

type CreateTopicRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Posts       []CreatePostRequest `json:"posts,omitempty" validate:"dive"`
}

type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type MovePostRequest struct {
	TopicId domain.TopicId `json:"topic_id" validate:"required"`
}

type ReassignPostRequest struct {
	UserId domain.UserId `json:"user_id" validate:"required"`
}

type CastVoteRequest struct {
	Value domain.VoteValue `json:"value"`
}

type CreateCommentRequest struct {
	Body string `json:"body"`
}

// Response DTOs

type IdResponse struct {
	Id int64 `json:"id"`
}

type TopicResponse struct {
	domain.Topic
}

type PostResponse struct {
	domain.PostWithEngagement
	Comments []domain.Comment `json:"comments"`
}

type VoteResponse struct {
	domain.Vote
}

type CommentResponse struct {
	domain.Comment
}

type FavoriteResponse struct {
	domain.Favorite
}

// UserProfileResponse contains the user with 5 most recent posts and comments and all favorites
type UserProfileResponse struct {
	domain.UserProfile
}
