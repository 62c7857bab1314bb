package models

import (
	"time"
)

// User - профиль пользователя социальной сети.
// Пароль хранится как opaque-хеш, его формат определяет слой аутентификации.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Name           string     `json:"name"`
	Password       string     `json:"-"`
	Bio            string     `json:"bio,omitempty"`
	Avatar         string     `json:"avatar,omitempty"`
	CoverImage     string     `json:"cover_image,omitempty"`
	CoverColor     string     `json:"cover_color,omitempty"`
	Work           string     `json:"work,omitempty"`
	Education      string     `json:"education,omitempty"`
	City           string     `json:"city,omitempty"`
	Hometown       string     `json:"hometown,omitempty"`
	IsAdmin        bool       `json:"is_admin"`
	Banned         bool       `json:"banned"`
	CreatedAt      time.Time  `json:"created_at"`
	LastNameChange *time.Time `json:"last_name_change,omitempty"`
}

// UserPatch - частичное обновление профиля.
// nil означает "оставить текущее значение", непустой указатель - перезаписать
// (в том числе пустой строкой, это явная очистка поля).
type UserPatch struct {
	Username       *string    `json:"username"`
	Name           *string    `json:"name"`
	Password       *string    `json:"-"`
	Bio            *string    `json:"bio"`
	Avatar         *string    `json:"avatar"`
	CoverImage     *string    `json:"cover_image"`
	CoverColor     *string    `json:"cover_color"`
	Work           *string    `json:"work"`
	Education      *string    `json:"education"`
	City           *string    `json:"city"`
	Hometown       *string    `json:"hometown"`
	LastNameChange *time.Time `json:"-"`
}
