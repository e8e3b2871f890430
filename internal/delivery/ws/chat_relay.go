package ws

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatRelayHandler upgrades HTTP requests to WebSocket connections and
// attaches them to the hub.
type ChatRelayHandler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewChatRelayHandler is the constructor for ChatRelayHandler, injected by Fx.
func NewChatRelayHandler(hub *Hub, logger *slog.Logger) *ChatRelayHandler {
	return &ChatRelayHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// The relay is origin-agnostic; auth happens at the app level.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleChat serves one relay client: register, pump frames to the hub
// until the socket dies, then unregister.
func (h *ChatRelayHandler) HandleChat(c echo.Context) error {
	clientID := c.QueryParam("client_id")
	if clientID == "" {
		return response.BindingError(c, "INVALID_INPUT", "client_id query parameter is required")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade websocket")
	}

	h.hub.Register(clientID, conn)
	defer func() {
		h.hub.Unregister(clientID, conn)
		conn.Close()
	}()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("ws read failed",
					slog.String("client_id", clientID),
					slog.Any("error", err))
			}

			return nil
		}

		h.hub.Broadcast(messageType, payload)
	}
}
