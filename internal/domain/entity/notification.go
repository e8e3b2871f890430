package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags. Fan-out is hardcoded to two triggers: a new
// order notifies every admin, a chat message notifies the receiver.
const (
	NotificationTypeNewOrder    = "new_order"
	NotificationTypeChatMessage = "chat_message"
)

// Notification is a pull-based, persisted message for one recipient.
// Clients poll the list (optionally unread only) and mark entries read.
type Notification struct {
	ID          uuid.UUID      `json:"id"`
	RecipientID uuid.UUID      `json:"recipient_id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Data        map[string]any `json:"data,omitempty"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
}
