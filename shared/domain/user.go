package domain

import "time"

type User struct {
	Id        UserId    `json:"id"`
	Email     Email     `json:"email"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Credentials struct {
	Email    Email    `json:"email" validate:"required,email"`
	Password Password `json:"password" validate:"required,min=8"`
}

// UserProfile is a user together with their recent activity.
type UserProfile struct {
	User           User       `json:"user"`
	RecentPosts    []Post     `json:"recent_posts"`
	RecentComments []Comment  `json:"recent_comments"`
	Favorites      []Favorite `json:"favorites"`
}
