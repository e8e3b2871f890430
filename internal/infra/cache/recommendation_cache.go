package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const defaultRecommendationTTL = 5 * time.Minute

// RecommendationCache caches the most-viewed / most-sold product lists.
// Misses and Redis failures are both reported as cache misses so the
// storefront keeps answering from PostgreSQL when Redis is down.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRecommendationCache is the constructor for RecommendationCache.
// The client may be nil when caching is disabled.
func NewRecommendationCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) *RecommendationCache {
	ttl := defaultRecommendationTTL
	if cfg != nil && cfg.Redis != nil && cfg.Redis.RecommendationTTL > 0 {
		ttl = cfg.Redis.RecommendationTTL
	}

	return &RecommendationCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProducts returns the cached product list for the key, if present.
func (c *RecommendationCache) GetProducts(ctx context.Context, key string) ([]*entity.Product, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("recommendation cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}

		return nil, false
	}

	var products []*entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.logger.Warn("recommendation cache entry corrupt, dropping",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		c.client.Del(ctx, key)

		return nil, false
	}

	return products, true
}

// SetProducts stores the product list under the key with the configured TTL.
// Failures are logged and swallowed.
func (c *RecommendationCache) SetProducts(ctx context.Context, key string, products []*entity.Product) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("recommendation cache encode failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("recommendation cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
