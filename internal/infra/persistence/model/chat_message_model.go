package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel mirrors the 'chat_messages' table. Content is either the
// message text or the public URL of an uploaded media file.
type ChatMessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageType string    `gorm:"type:varchar(10);not null"`
	Content     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
