package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for pull-based notifications.
type NotificationUsecase interface {
	// ListNotifications returns the recipient's notifications newest first.
	ListNotifications(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, skip, limit int) ([]*entity.Notification, error)

	// MarkRead flags one of the recipient's notifications as read.
	// Idempotent; foreign or missing IDs map to NotFound.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}
