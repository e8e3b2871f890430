package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// VariantInput is one variant row supplied on product create/update.
type VariantInput struct {
	Name  string
	Price float64
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uuid.UUID
	Images      []string
	Variants    []VariantInput
}

// UpdateProductInput defines the product fields that may change.
// Nil fields are left untouched; Images and Variants, when present,
// replace the existing lists wholesale.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *uuid.UUID
	Images      *[]string
	Variants    *[]VariantInput
}

// ListProductsInput narrows and pages catalog listings.
type ListProductsInput struct {
	Query      string
	CategoryID *uuid.UUID
	PriceMin   *float64
	PriceMax   *float64
	Skip       int
	Limit      int
}

// ProductPage is one page of products plus pagination metadata.
type ProductPage struct {
	Products []*entity.Product
	Total    int64
	NextSkip *int
}

// ProductUsecase defines the interface for catalog business operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProduct returns the hydrated product and counts the view.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	ListProductsPaged(ctx context.Context, input *ListProductsInput) (*ProductPage, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
