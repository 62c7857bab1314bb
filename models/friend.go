package models

import "time"

// Статусы дружбы. Отклонённая заявка не блокирует создание новой.
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusRejected = "rejected"
)

// FriendEdge - связь между двумя пользователями. Направление requester/addressee
// значимо для уведомлений, но при проверке существования пара трактуется как
// неупорядоченная: между A и B не может быть двух активных заявок.
type FriendEdge struct {
	ID          int64     `json:"id"`
	RequesterID int64     `json:"requester_id"`
	AddresseeID int64     `json:"addressee_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// FriendRequestView - входящая заявка вместе с профилем отправителя.
type FriendRequestView struct {
	RequestID int64     `json:"request_id"`
	Requester User      `json:"requester"`
	CreatedAt time.Time `json:"created_at"`
}
