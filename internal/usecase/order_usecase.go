package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items               []OrderItemInput
	DeliveryAddressText string
	DeliveryLat         *float64
	DeliveryLng         *float64
	DeliveryNote        string
}

// OrderPage is one page of orders plus pagination metadata.
type OrderPage struct {
	Orders   []*entity.Order
	Total    int64
	NextSkip *int
}

// OrderUsecase defines the interface for order business operations.
type OrderUsecase interface {
	// CreateOrder validates the lines, snapshots unit prices, bumps sold
	// counters, writes per-admin notifications and commits everything in
	// one transaction. The order.created event is published after commit.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder returns the hydrated order. Non-admins only see their own.
	GetOrder(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error)

	ListMyOrders(ctx context.Context, userID uuid.UUID, skip, limit int) (*OrderPage, error)
	ListAllOrders(ctx context.Context, skip, limit int) (*OrderPage, error)

	// UpdateStatus transitions an order; only canonical statuses pass.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error)

	// OrderQR renders the pickup QR code PNG. Non-admins only for their own.
	OrderQR(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) ([]byte, error)
}
