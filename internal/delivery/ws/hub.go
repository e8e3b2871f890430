// Package ws implements the realtime chat relay: a WebSocket hub that
// fans every inbound frame out to all connected clients. Messages are
// not persisted here; the REST chat endpoints own storage.
package ws

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks connected relay clients keyed by their self-assigned ID.
// All methods are safe for concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
	logger  *slog.Logger
}

// NewHub creates an empty relay hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		logger:  logger,
	}
}

// Register adds a client connection. A reconnect under the same ID
// replaces and closes the previous socket.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.clients[clientID]; ok {
		old.Close()
	}
	h.clients[clientID] = conn

	h.logger.Info("ws client connected",
		slog.String("client_id", clientID),
		slog.Int("clients", len(h.clients)))
}

// Unregister drops a client connection. Only the currently registered
// socket is removed, so a stale goroutine cannot evict its successor.
func (h *Hub) Unregister(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.clients[clientID]; ok && current == conn {
		delete(h.clients, clientID)
		h.logger.Info("ws client disconnected",
			slog.String("client_id", clientID),
			slog.Int("clients", len(h.clients)))
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Broadcast writes the frame to every connected client. A failed write
// only evicts that client; the rest of the fan-out continues.
func (h *Hub) Broadcast(messageType int, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for clientID, conn := range h.clients {
		if err := conn.WriteMessage(messageType, payload); err != nil {
			h.logger.Warn("ws broadcast failed, dropping client",
				slog.String("client_id", clientID),
				slog.Any("error", err))
			conn.Close()
			delete(h.clients, clientID)
		}
	}
}
