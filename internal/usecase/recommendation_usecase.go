package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RecommendationUsecase defines the interface for popularity rankings.
// Results may be served from a short-lived cache.
type RecommendationUsecase interface {
	MostViewed(ctx context.Context, limit int) ([]*entity.Product, error)
	MostSold(ctx context.Context, limit int) ([]*entity.Product, error)
}
