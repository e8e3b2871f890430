package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/cache"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50

	cacheKeyMostViewed = "recommendations:most_viewed:"
	cacheKeyMostSold   = "recommendations:most_sold:"
)

// recommendationService implements the RecommendationUsecase interface.
// Rankings are served from a short-TTL cache when available; slightly
// stale counters are acceptable here.
type recommendationService struct {
	productRepo repository.ProductRepository
	cache       *cache.RecommendationCache
	logger      *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       *cache.RecommendationCache
	Logger      *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MostViewed returns products ordered by view counter descending.
func (srv *recommendationService) MostViewed(ctx context.Context, limit int) ([]*entity.Product, error) {
	return srv.ranked(ctx, cacheKeyMostViewed, limit, srv.productRepo.ListMostViewed)
}

// MostSold returns products ordered by sold counter descending.
func (srv *recommendationService) MostSold(ctx context.Context, limit int) ([]*entity.Product, error) {
	return srv.ranked(ctx, cacheKeyMostSold, limit, srv.productRepo.ListMostSold)
}

func (srv *recommendationService) ranked(
	ctx context.Context,
	keyPrefix string,
	limit int,
	fetch func(context.Context, int) ([]*entity.Product, error),
) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	key := keyPrefix + strconv.Itoa(limit)
	if products, ok := srv.cache.GetProducts(ctx, key); ok {
		return products, nil
	}

	products, err := fetch(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch ranked products")
	}

	srv.cache.SetProducts(ctx, key, products)

	return products, nil
}
