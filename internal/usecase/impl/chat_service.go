package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	chatRepo  repository.ChatMessageRepository
	storage   service.FileStorage
	logger    *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	ChatRepo  repository.ChatMessageRepository
	Storage   service.FileStorage
	Logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		chatRepo:  params.ChatRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage stores one direct message and the receiver's notification
// in a single transaction. Media uploads land in file storage first; the
// persisted content is the file's public URL.
func (srv *chatService) SendMessage(ctx context.Context, senderID uuid.UUID, input *usecase.SendMessageInput) (*entity.ChatMessage, error) {
	if !entity.ValidChatMessageType(input.MessageType) {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("unknown message type")
	}
	if input.ReceiverID == senderID {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("cannot send a message to yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("receiver does not exist")
		}

		return nil, errors.Wrap(err, "failed to find receiver")
	}

	content, err := srv.resolveContent(ctx, input)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		SenderID:    senderID,
		ReceiverID:  input.ReceiverID,
		MessageType: input.MessageType,
		Content:     content,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ChatMessageRepo().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create chat message")
		}

		notification := &entity.Notification{
			RecipientID: input.ReceiverID,
			Type:        entity.NotificationTypeChatMessage,
			Title:       "New message",
			Body:        notificationBody(message),
			Data: map[string]any{
				"sender_id":  senderID.String(),
				"message_id": message.ID.String(),
			},
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create chat notification")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute chat message transaction",
			slog.Any("senderID", senderID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Chat message sent",
		slog.Any("messageID", message.ID),
		slog.Any("senderID", senderID),
		slog.Any("receiverID", input.ReceiverID),
	)

	return message, nil
}

// GetConversation returns all messages between the two users, oldest first.
func (srv *chatService) GetConversation(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.ChatMessage, error) {
	if _, err := srv.userRepo.FindByID(ctx, otherID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	messages, err := srv.chatRepo.ListConversation(ctx, userID, otherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return messages, nil
}

func (srv *chatService) resolveContent(ctx context.Context, input *usecase.SendMessageInput) (string, error) {
	if input.MessageType == entity.ChatMessageTypeText {
		text := strings.TrimSpace(input.Text)
		if text == "" {
			return "", domainerrors.ErrValidationFailed.WrapMessage("text messages need non-empty text")
		}

		return text, nil
	}

	if input.File == nil {
		return "", domainerrors.ErrInvalidInput.WrapMessage("media messages need a file upload")
	}

	url, err := srv.storage.Save(ctx, input.FileName, input.File)
	if err != nil {
		return "", errors.Wrap(err, "failed to store media file")
	}

	return url, nil
}

func notificationBody(message *entity.ChatMessage) string {
	if message.MessageType == entity.ChatMessageTypeText {
		return message.Content
	}

	return "Sent a " + message.MessageType
}
