package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. Data holds the
// type-specific JSON payload (order id, sender id, ...) as raw JSONB.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(50);not null"`
	Title       string    `gorm:"type:text;not null"`
	Body        string    `gorm:"type:text"`
	Data        []byte    `gorm:"type:jsonb"`
	IsRead      bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
