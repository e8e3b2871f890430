package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for feedback persistence.
var (
	// ErrRatingNotFound is returned when a user has no rating for a product.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
)

// FeedbackRepository defines the interface for rating and comment persistence.
type FeedbackRepository interface {
	// FindRating retrieves the rating a user gave a product.
	FindRating(ctx context.Context, productID, userID uuid.UUID) (*entity.ProductRating, error)

	// UpsertRating inserts the rating or updates it in place, keyed by the
	// (product_id, user_id) uniqueness constraint.
	UpsertRating(ctx context.Context, rating *entity.ProductRating) error

	// DeleteRating removes a user's rating. Returns false when none existed.
	DeleteRating(ctx context.Context, productID, userID uuid.UUID) (bool, error)

	// RatingStats computes (average, count) live from the rating rows.
	// Average is 0 when the product has no ratings.
	RatingStats(ctx context.Context, productID uuid.UUID) (*entity.RatingStats, error)

	// CreateComment persists a new comment.
	CreateComment(ctx context.Context, comment *entity.ProductComment) error

	// FindCommentByID retrieves a comment by its unique ID.
	FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.ProductComment, error)

	// ListComments retrieves a product's comments newest first, with pagination.
	ListComments(ctx context.Context, productID uuid.UUID, skip, limit int) ([]*entity.ProductComment, error)

	// CountComments returns the number of comments on a product.
	CountComments(ctx context.Context, productID uuid.UUID) (int64, error)

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, id uuid.UUID) error
}
