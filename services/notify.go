package services

import "encoding/json"

// Типы уведомлений, доставляемых через WebSocket.
const (
	NotifyFriendRequest  = "friend_request"
	NotifyFriendAccepted = "friend_accepted"
	NotifyPostLiked      = "post_liked"
	NotifyPostCommented  = "post_commented"
)

type wsNotify struct {
	Event  string `json:"event"`
	FromID int64  `json:"from_id,omitempty"`
	PostID int64  `json:"post_id,omitempty"`
}

// SendWSNotify отправляет короткое уведомление пользователю, если у него есть
// открытые соединения. Отсутствие соединений не ошибка.
func SendWSNotify(userID int64, event string, fromID, postID int64) error {
	data, err := json.Marshal(wsNotify{Event: event, FromID: fromID, PostID: postID})
	if err != nil {
		return err
	}
	Hub.Push(userID, data)
	return nil
}
