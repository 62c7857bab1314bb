package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Push зовут одновременно консьюмер брокера, fanout постов и уведомления:
// записи в одно соединение не должны пересекаться.
func TestHubConcurrentPush(t *testing.T) {
	hub := NewWSHub()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(7, conn)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections(7) == 1 },
		time.Second, 10*time.Millisecond)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Push(7, []byte(`{"event":"ping"}`))
		}()
	}
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	for i := 0; i < n; i++ {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, `{"event":"ping"}`, string(msg))
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewWSHub()
	conn := &websocket.Conn{}

	hub.Register(1, conn)
	assert.Equal(t, 1, hub.Connections(1))

	hub.Unregister(1, conn)
	assert.Equal(t, 0, hub.Connections(1))
}
