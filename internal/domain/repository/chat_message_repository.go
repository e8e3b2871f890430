package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatMessageRepository defines the interface for persisted chat history.
type ChatMessageRepository interface {
	// Create persists a new chat message.
	Create(ctx context.Context, message *entity.ChatMessage) error

	// ListConversation retrieves all messages exchanged between two users
	// in either direction, oldest first.
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.ChatMessage, error)
}
