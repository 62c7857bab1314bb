package services

import (
	"sync"

	"github.com/gorilla/websocket"
)

// wsClient - соединение с собственным write-мьютексом: gorilla/websocket
// запрещает конкурентную запись в одно соединение.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// WSHub держит открытые WebSocket-соединения по id пользователя.
// У пользователя может быть несколько соединений (несколько вкладок).
type WSHub struct {
	mu      sync.RWMutex
	clients map[int64][]*wsClient
}

func NewWSHub() *WSHub {
	return &WSHub{clients: make(map[int64][]*wsClient)}
}

func (h *WSHub) Register(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = append(h.clients[userID], &wsClient{conn: conn})
}

func (h *WSHub) Unregister(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.clients[userID]
	for i, c := range clients {
		if c.conn == conn {
			h.clients[userID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Push отправляет сообщение во все соединения пользователя. Push зовут сразу
// несколько горутин (консьюмер брокера, fanout постов, уведомления), поэтому
// запись в каждое соединение сериализуется его мьютексом. Ошибки записи
// игнорируются: умершее соединение снимет его же read-loop.
func (h *WSHub) Push(userID int64, message []byte) {
	h.mu.RLock()
	clients := make([]*wsClient, len(h.clients[userID]))
	copy(clients, h.clients[userID])
	h.mu.RUnlock()

	for _, c := range clients {
		_ = c.write(message)
	}
}

// Connections возвращает число открытых соединений пользователя.
func (h *WSHub) Connections(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

var Hub = NewWSHub()
