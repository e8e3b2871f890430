package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists the order row together with all its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with items hydrated (product, variant).
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser retrieves a user's orders, newest first, with pagination.
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*entity.Order, error)

	// CountByUser returns the number of orders placed by the user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListAll retrieves all orders, newest first, with pagination.
	ListAll(ctx context.Context, skip, limit int) ([]*entity.Order, error)

	// CountAll returns the total number of orders.
	CountAll(ctx context.Context) (int64, error)

	// UpdateStatus transitions an order to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
