package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductRating is a user's 1..5 score for a product. At most one row
// exists per (product, user) pair; a second write updates in place.
type ProductRating struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingStats is the live aggregate over a product's ratings, computed
// from storage rather than the cached Product.Rating field.
type RatingStats struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ProductComment is free-text feedback on a product, listed newest first.
type ProductComment struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
