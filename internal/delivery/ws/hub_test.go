package ws

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRelayServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	hub := NewHub(logger)

	e := echo.New()
	e.GET("/ws/chat", NewChatRelayHandler(hub, logger).HandleChat)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return hub, server
}

func dialRelay(t *testing.T, server *httptest.Server, clientID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat?client_id=" + clientID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestChatRelay_BroadcastFansOut(t *testing.T) {
	hub, server := startRelayServer(t)

	alice := dialRelay(t, server, "alice")
	bob := dialRelay(t, server, "bob")

	require.Eventually(t, func() bool { return hub.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte("hello everyone")))

	for _, conn := range []*websocket.Conn{alice, bob} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, "hello everyone", string(payload))
	}
}

func TestChatRelay_DisconnectPrunes(t *testing.T) {
	hub, server := startRelayServer(t)

	dialRelay(t, server, "alice")
	bob := dialRelay(t, server, "bob")

	require.Eventually(t, func() bool { return hub.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bob.Close())

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestChatRelay_RequiresClientID(t *testing.T) {
	_, server := startRelayServer(t)

	resp, err := http.Get(server.URL + "/ws/chat")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
