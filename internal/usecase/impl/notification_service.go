package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications returns the recipient's notifications newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, skip, limit int) ([]*entity.Notification, error) {
	skip, limit = normalizePage(skip, limit)

	notifications, err := srv.notificationRepo.ListByRecipient(ctx, recipientID, unreadOnly, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags one of the recipient's notifications as read. Marking an
// already-read notification succeeds again; another user's notification
// is reported as missing, never as forbidden.
func (srv *notificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, id, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	srv.log(ctx).Debug("Notification marked read",
		slog.Any("notificationID", id), slog.Any("recipientID", recipientID))

	return nil
}
