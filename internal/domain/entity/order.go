package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the canonical order state set. Earlier revisions of the
// product mixed cased and lowercase values; the storage layer only accepts
// the lowercase set below.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusSuccess   OrderStatus = "success"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a member of the canonical status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSuccess, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// Order is a purchase placed by a user. Items are created with the order
// and immutable afterwards; they are cascade-deleted with it.
type Order struct {
	ID                  uuid.UUID   `json:"id"`
	UserID              uuid.UUID   `json:"user_id"`
	Status              OrderStatus `json:"status"`
	Items               []OrderItem `json:"items"`
	DeliveryAddressText string      `json:"delivery_address_text"`
	DeliveryLat         *float64    `json:"delivery_lat,omitempty"`
	DeliveryLng         *float64    `json:"delivery_lng,omitempty"`
	DeliveryNote        string      `json:"delivery_note,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
}

// OrderItem is one line of an order. UnitPrice is a snapshot of the
// product (or variant) price at order time and must never be recomputed
// from the current catalog price.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"-"`
	ProductID uuid.UUID       `json:"product_id"`
	VariantID *uuid.UUID      `json:"variant_id,omitempty"`
	Product   *Product        `json:"product,omitempty"`
	Variant   *ProductVariant `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}
