package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines one direct message. Text messages carry Text;
// media messages carry the upload via FileName + File.
type SendMessageInput struct {
	ReceiverID  uuid.UUID
	MessageType string
	Text        string
	FileName    string
	File        io.Reader
}

// ChatUsecase defines the interface for persisted direct messaging.
type ChatUsecase interface {
	// SendMessage stores the message (uploading media first) and writes
	// the receiver's notification in the same transaction.
	SendMessage(ctx context.Context, senderID uuid.UUID, input *SendMessageInput) (*entity.ChatMessage, error)

	// GetConversation returns all messages between the two users, both
	// directions, oldest first.
	GetConversation(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.ChatMessage, error)
}
