package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Status              string    `gorm:"type:varchar(20);not null;default:'pending'"`
	DeliveryAddressText string    `gorm:"type:text"`
	DeliveryLat         *float64  `gorm:"type:decimal(10,8)"`
	DeliveryLng         *float64  `gorm:"type:decimal(11,8)"`
	DeliveryNote        string    `gorm:"type:text"`
	CreatedAt           time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPrice is the price
// snapshot taken when the order was placed; later catalog edits never change it.
type OrderItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null"`
	VariantID *uuid.UUID `gorm:"type:uuid"`
	Quantity  int        `gorm:"not null"`
	UnitPrice float64    `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time

	Product *ProductModel        `gorm:"foreignKey:ProductID"`
	Variant *ProductVariantModel `gorm:"foreignKey:VariantID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
