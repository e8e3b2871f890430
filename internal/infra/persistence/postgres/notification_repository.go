package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a new notification row.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByRecipient retrieves a recipient's notifications newest first,
// optionally restricted to unread ones.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, skip, limit int) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var models []model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(models))
	for i := range models {
		notification, err := toNotificationDomain(&models[i])
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkRead sets the read flag on the recipient's notification. Scoping the
// UPDATE by recipient makes foreign IDs indistinguishable from missing ones.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	var payload map[string]any
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification payload")
		}
	}

	return &entity.Notification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        data.Type,
		Title:       data.Title,
		Body:        data.Body,
		Data:        payload,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
	}, nil
}

func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	var payload []byte
	if len(data.Data) > 0 {
		encoded, err := json.Marshal(data.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode notification payload")
		}
		payload = encoded
	}

	return &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        data.Type,
		Title:       data.Title,
		Body:        data.Body,
		Data:        payload,
		IsRead:      data.IsRead,
	}, nil
}
