package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentPage is one page of comments plus pagination metadata.
type CommentPage struct {
	Comments []*entity.ProductComment
	Total    int64
	NextSkip *int
}

// FeedbackUsecase defines the interface for rating and comment operations.
type FeedbackUsecase interface {
	// RateProduct upserts the caller's 1..5 rating and recomputes the
	// product's cached average in the same transaction.
	RateProduct(ctx context.Context, productID, userID uuid.UUID, rating int) (*entity.RatingStats, error)

	// DeleteRating removes the caller's rating and recomputes the cached
	// average. Deleted reports whether a rating existed.
	DeleteRating(ctx context.Context, productID, userID uuid.UUID) (deleted bool, stats *entity.RatingStats, err error)

	// GetRatingStats returns the live (average, count) aggregate.
	GetRatingStats(ctx context.Context, productID uuid.UUID) (*entity.RatingStats, error)

	// GetMyRating returns the caller's rating, or ErrNotFound.
	GetMyRating(ctx context.Context, productID, userID uuid.UUID) (*entity.ProductRating, error)

	// AddComment attaches trimmed, non-empty comment text to a product.
	AddComment(ctx context.Context, productID, userID uuid.UUID, text string) (*entity.ProductComment, error)

	ListComments(ctx context.Context, productID uuid.UUID, skip, limit int) (*CommentPage, error)

	// DeleteComment removes a comment; only the author or an admin may.
	DeleteComment(ctx context.Context, productID, commentID, requesterID uuid.UUID, isAdmin bool) error
}
