package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"socialnet/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler - WebSocket endpoint для push-событий ленты и уведомлений.
func WSHandler(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	// Приветствие пишем до регистрации в хабе: после неё прямая запись
	// в соединение может столкнуться с конкурентным Push
	_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"connected"}`))

	services.Hub.Register(userID, conn)
	defer services.Hub.Unregister(userID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
		// Входящие сообщения от клиента не обрабатываются
	}
}
