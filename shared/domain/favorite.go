package domain

import "time"

type Favorite struct {
	Id        FavoriteId `json:"id"`
	PostId    PostId     `json:"post_id"`
	UserId    UserId     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
}
