package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat message content types. Text messages carry the text itself in
// Content; media messages carry the uploaded file's public URL.
const (
	ChatMessageTypeText  = "text"
	ChatMessageTypeImage = "image"
	ChatMessageTypeVideo = "video"
	ChatMessageTypeAudio = "audio"
)

// ValidChatMessageType reports whether t is a known content type.
func ValidChatMessageType(t string) bool {
	switch t {
	case ChatMessageTypeText, ChatMessageTypeImage, ChatMessageTypeVideo, ChatMessageTypeAudio:
		return true
	}

	return false
}

// ChatMessage is one direct message between two users, persisted for the
// REST conversation history. The live WebSocket relay is separate and
// keeps nothing.
type ChatMessage struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	ReceiverID  uuid.UUID `json:"receiver_id"`
	MessageType string    `json:"message_type"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
