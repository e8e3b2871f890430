package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChatService(t *testing.T) (
	usecase.ChatUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockUserRepository,
	*mockRepo.MockChatMessageRepository,
	*mockSvc.MockFileStorage,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	chatRepo := mockRepo.NewMockChatMessageRepository(t)
	storage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	chatService := NewChatService(ChatServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		ChatRepo:  chatRepo,
		Storage:   storage,
		Logger:    logger,
	})

	return chatService, txManager, userRepo, chatRepo, storage
}

func TestChatService_SendMessage_TextSuccess(t *testing.T) {
	chatService, txManager, userRepo, _, _ := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()
	messageID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txChatRepo := mockRepo.NewMockChatMessageRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	userRepo.EXPECT().FindByID(ctx, receiverID).Return(&entity.User{ID: receiverID}, nil)
	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ChatMessageRepo().Return(txChatRepo)
	factory.EXPECT().NotificationRepo().Return(notificationRepo)

	txChatRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, message *entity.ChatMessage) {
		assert.Equal(t, "hello there", message.Content)
		assert.Equal(t, entity.ChatMessageTypeText, message.MessageType)
		message.ID = messageID
	}).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, notification *entity.Notification) {
		assert.Equal(t, receiverID, notification.RecipientID)
		assert.Equal(t, entity.NotificationTypeChatMessage, notification.Type)
		assert.Equal(t, "hello there", notification.Body)
		assert.Equal(t, senderID.String(), notification.Data["sender_id"])
	}).Return(nil)

	message, err := chatService.SendMessage(ctx, senderID, &usecase.SendMessageInput{
		ReceiverID:  receiverID,
		MessageType: entity.ChatMessageTypeText,
		Text:        "  hello there  ",
	})

	require.NoError(t, err)
	assert.Equal(t, messageID, message.ID)
}

func TestChatService_SendMessage_MediaStoresFile(t *testing.T) {
	chatService, txManager, userRepo, _, storage := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()
	file := strings.NewReader("fake image bytes")

	factory := mockRepo.NewMockRepositoryFactory(t)
	txChatRepo := mockRepo.NewMockChatMessageRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	userRepo.EXPECT().FindByID(ctx, receiverID).Return(&entity.User{ID: receiverID}, nil)
	storage.EXPECT().Save(ctx, "photo.png", file).Return("/media/generated.png", nil)
	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ChatMessageRepo().Return(txChatRepo)
	factory.EXPECT().NotificationRepo().Return(notificationRepo)

	txChatRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, message *entity.ChatMessage) {
		// Media content is the stored file's public URL, not the bytes.
		assert.Equal(t, "/media/generated.png", message.Content)
	}).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	message, err := chatService.SendMessage(ctx, senderID, &usecase.SendMessageInput{
		ReceiverID:  receiverID,
		MessageType: entity.ChatMessageTypeImage,
		FileName:    "photo.png",
		File:        file,
	})

	require.NoError(t, err)
	assert.Equal(t, "/media/generated.png", message.Content)
}

func TestChatService_SendMessage_Invalid(t *testing.T) {
	chatService, _, userRepo, _, _ := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	_, err := chatService.SendMessage(ctx, senderID, &usecase.SendMessageInput{
		ReceiverID:  receiverID,
		MessageType: "sticker",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = chatService.SendMessage(ctx, senderID, &usecase.SendMessageInput{
		ReceiverID:  senderID,
		MessageType: entity.ChatMessageTypeText,
		Text:        "talking to myself",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	userRepo.EXPECT().FindByID(ctx, receiverID).Return(&entity.User{ID: receiverID}, nil)
	_, err = chatService.SendMessage(ctx, senderID, &usecase.SendMessageInput{
		ReceiverID:  receiverID,
		MessageType: entity.ChatMessageTypeText,
		Text:        "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChatService_SendMessage_UnknownReceiver(t *testing.T) {
	chatService, _, userRepo, _, _ := createTestChatService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, receiverID).Return(nil, repository.ErrUserNotFound)

	message, err := chatService.SendMessage(ctx, uuid.New(), &usecase.SendMessageInput{
		ReceiverID:  receiverID,
		MessageType: entity.ChatMessageTypeText,
		Text:        "hello",
	})

	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestChatService_GetConversation_Success(t *testing.T) {
	chatService, _, userRepo, chatRepo, _ := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	messages := []*entity.ChatMessage{
		{ID: uuid.New(), SenderID: userID, ReceiverID: otherID},
		{ID: uuid.New(), SenderID: otherID, ReceiverID: userID},
	}

	userRepo.EXPECT().FindByID(ctx, otherID).Return(&entity.User{ID: otherID}, nil)
	chatRepo.EXPECT().ListConversation(ctx, userID, otherID).Return(messages, nil)

	result, err := chatService.GetConversation(ctx, userID, otherID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
