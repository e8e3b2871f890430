package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateCategoryName is returned when the unique name constraint is violated.
var ErrDuplicateCategoryName = errors.New("category name already exists")

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Category, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
