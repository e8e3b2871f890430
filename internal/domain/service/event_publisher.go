package service

import (
	"context"
)

// OrderCreatedEvent is published after an order transaction commits so
// downstream consumers (fulfilment, analytics) can react asynchronously.
// Publishing is best-effort; a failed publish never fails the order.
type OrderCreatedEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string  `json:"order_id"`
	UserID    string  `json:"user_id"`
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order-created event for async processing.
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
