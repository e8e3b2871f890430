package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductRatingModel mirrors the 'product_ratings' table. The composite
// unique index enforces one rating per (product, user) pair; concurrent
// writes for the same pair resolve to an upsert.
type ProductRatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_ratings_product_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_ratings_product_user"`
	Rating    int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductRatingModel) TableName() string {
	return "product_ratings"
}

// ProductCommentModel mirrors the 'product_comments' table.
type ProductCommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductCommentModel) TableName() string {
	return "product_comments"
}
