package models

import "time"

// StoryTTL - время жизни истории с момента создания.
const StoryTTL = 24 * time.Hour

// Story - эфемерная история пользователя. Истёкшие истории отфильтровываются
// при чтении, физически они не удаляются.
type Story struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Media     string    `json:"media"`
	CreatedAt time.Time `json:"created_at"`
}

// StoryView - история вместе с профилем автора.
type StoryView struct {
	Story
	Author User `json:"author"`
}
