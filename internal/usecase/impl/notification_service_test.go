package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	notificationService := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           logger,
	})

	return notificationService, notificationRepo
}

func TestNotificationService_ListNotifications_UnreadOnly(t *testing.T) {
	notificationService, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), RecipientID: recipientID, Type: entity.NotificationTypeNewOrder},
	}

	notificationRepo.EXPECT().ListByRecipient(ctx, recipientID, true, 0, 20).Return(notifications, nil)

	result, err := notificationService.ListNotifications(ctx, recipientID, true, 0, 0)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	notificationService, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	recipientID := uuid.New()

	notificationRepo.EXPECT().MarkRead(ctx, id, recipientID).Return(nil)

	err := notificationService.MarkRead(ctx, id, recipientID)

	assert.NoError(t, err)
}

func TestNotificationService_MarkRead_ForeignNotificationLooksMissing(t *testing.T) {
	notificationService, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	recipientID := uuid.New()

	notificationRepo.EXPECT().MarkRead(ctx, id, recipientID).Return(repository.ErrNotificationNotFound)

	err := notificationService.MarkRead(ctx, id, recipientID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
