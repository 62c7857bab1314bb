package models

import "time"

// Post - пост пользователя. Media - опциональная ссылка на медиафайл,
// хранилище трактует её как opaque-строку.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Media     string    `json:"media,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Like - лайк пользователя на посте. Не больше одного на пару (user, post).
type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment - комментарий к посту.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedPost - пост, обогащённый данными для ленты: автор, счётчик лайков,
// лайкнул ли его смотрящий пользователь и полный список комментариев.
type FeedPost struct {
	Post
	Author   User          `json:"author"`
	Likes    int           `json:"likes"`
	Liked    bool          `json:"liked"`
	Comments []PostComment `json:"comments"`
}

// PostComment - комментарий вместе с профилем его автора.
type PostComment struct {
	Comment
	Author User `json:"author"`
}
