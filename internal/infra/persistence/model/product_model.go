package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Rating holds the denormalized
// average recomputed whenever a rating is written or removed. ViewsCount and
// SoldCount are only ever touched through atomic SQL increments.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Rating      float64   `gorm:"type:decimal(3,2);not null;default:0"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ViewsCount  int64     `gorm:"not null;default:0"`
	SoldCount   int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time

	Category *CategoryModel        `gorm:"foreignKey:CategoryID"`
	Images   []ProductImageModel   `gorm:"foreignKey:ProductID"`
	Variants []ProductVariantModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. Position preserves
// the upload order for gallery rendering.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductVariantModel mirrors the 'product_variants' table. A variant carries
// its own price which overrides the product price when ordered.
type ProductVariantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
