package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product variant is not found.
	ErrVariantNotFound = errors.New("product variant not found")
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	Query      string
	CategoryID *uuid.UUID
	PriceMin   *float64
	PriceMax   *float64
}

// ProductRepository defines the interface for product-related database operations.
// Counter updates (views, sold) and the cached rating are applied with
// atomic storage-level expressions so concurrent writers cannot lose updates.
type ProductRepository interface {
	// Create persists a new product with its images and variants.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product hydrated with category, images and variants.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindVariantByID retrieves a single variant row.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	// List retrieves hydrated products matching the filter, with pagination.
	List(ctx context.Context, filter ProductFilter, skip, limit int) ([]*entity.Product, error)

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// ListMostViewed returns products ordered by views_count descending.
	ListMostViewed(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListMostSold returns products ordered by sold_count descending.
	ListMostSold(ctx context.Context, limit int) ([]*entity.Product, error)

	// Update persists scalar field changes to an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// ReplaceImages swaps the product's image list wholesale.
	ReplaceImages(ctx context.Context, productID uuid.UUID, urls []string) error

	// ReplaceVariants swaps the product's variant list wholesale.
	ReplaceVariants(ctx context.Context, productID uuid.UUID, variants []entity.ProductVariant) error

	// IncrementViews atomically adds one to views_count.
	IncrementViews(ctx context.Context, productID uuid.UUID) error

	// IncrementSold atomically adds quantity to sold_count.
	IncrementSold(ctx context.Context, productID uuid.UUID, quantity int) error

	// SetRating persists the recomputed cached rating average.
	SetRating(ctx context.Context, productID uuid.UUID, rating float64) error

	// Delete removes a product; images, variants and feedback cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
