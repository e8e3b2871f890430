package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatMessageRepository implements the repository.ChatMessageRepository interface using GORM.
type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository is the constructor for chatMessageRepository.
func NewChatMessageRepository(db *gorm.DB) repository.ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// Create persists a new chat message.
func (repo *chatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	messageM := &model.ChatMessageModel{
		SenderID:    message.SenderID,
		ReceiverID:  message.ReceiverID,
		MessageType: message.MessageType,
		Content:     message.Content,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListConversation retrieves all messages exchanged between two users in
// either direction, oldest first.
func (repo *chatMessageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.ChatMessage, error) {
	var models []model.ChatMessageModel
	if err := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	messages := make([]*entity.ChatMessage, 0, len(models))
	for i := range models {
		messages = append(messages, &entity.ChatMessage{
			ID:          models[i].ID,
			SenderID:    models[i].SenderID,
			ReceiverID:  models[i].ReceiverID,
			MessageType: models[i].MessageType,
			Content:     models[i].Content,
			CreatedAt:   models[i].CreatedAt,
		})
	}

	return messages, nil
}
