package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found
// or belongs to another recipient.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification row.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByRecipient retrieves a recipient's notifications newest first,
	// optionally restricted to unread ones.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, skip, limit int) ([]*entity.Notification, error)

	// MarkRead sets the read flag on the recipient's notification.
	// Idempotent; returns ErrNotificationNotFound for foreign or missing IDs.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}
