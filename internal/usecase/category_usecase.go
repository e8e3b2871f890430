package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name    string
	IconURL string
}

// UpdateCategoryInput defines the category fields that may change.
// Nil fields are left untouched.
type UpdateCategoryInput struct {
	Name    *string
	IconURL *string
}

// CategoryPage is one page of categories plus pagination metadata.
type CategoryPage struct {
	Categories []*entity.Category
	Total      int64
	NextSkip   *int
}

// CategoryUsecase defines the interface for category business operations.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context, skip, limit int) (*CategoryPage, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
