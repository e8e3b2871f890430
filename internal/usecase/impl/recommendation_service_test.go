package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/cache"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRecommendationService(t *testing.T) (usecase.RecommendationUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	recommendationService := NewRecommendationService(RecommendationServiceParams{
		ProductRepo: productRepo,
		// Nil client: every lookup is a cache miss and writes are no-ops.
		Cache:  cache.NewRecommendationCache(nil, nil, logger),
		Logger: logger,
	})

	return recommendationService, productRepo
}

func TestRecommendationService_MostViewed_DefaultLimit(t *testing.T) {
	recommendationService, productRepo := createTestRecommendationService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}

	productRepo.EXPECT().ListMostViewed(ctx, 10).Return(products, nil)

	result, err := recommendationService.MostViewed(ctx, 0)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestRecommendationService_MostSold_ClampsLimit(t *testing.T) {
	recommendationService, productRepo := createTestRecommendationService(t)

	ctx := context.Background()

	productRepo.EXPECT().ListMostSold(ctx, 50).Return([]*entity.Product{}, nil)

	result, err := recommendationService.MostSold(ctx, 500)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRecommendationService_MostViewed_ExplicitLimit(t *testing.T) {
	recommendationService, productRepo := createTestRecommendationService(t)

	ctx := context.Background()

	productRepo.EXPECT().ListMostViewed(ctx, 3).Return([]*entity.Product{{ID: uuid.New()}}, nil)

	result, err := recommendationService.MostViewed(ctx, 3)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
