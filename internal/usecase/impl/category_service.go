package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory adds a new category; names are unique.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name must not be empty")
	}

	category := &entity.Category{
		Name:    name,
		IconURL: input.IconURL,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategoryName) {
			return nil, domainerrors.ErrCategoryNameTaken
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", name))

	return category, nil
}

// GetCategory returns the category with the given ID.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// ListCategories returns one page of categories with pagination metadata.
func (srv *categoryService) ListCategories(ctx context.Context, skip, limit int) (*usecase.CategoryPage, error) {
	skip, limit = normalizePage(skip, limit)

	categories, err := srv.categoryRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	total, err := srv.categoryRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}

	return &usecase.CategoryPage{
		Categories: categories,
		Total:      total,
		NextSkip:   usecase.NextSkip(skip, limit, total),
	}, nil
}

// UpdateCategory applies partial changes to a category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("category name must not be empty")
		}
		category.Name = name
	}
	if input.IconURL != nil {
		category.IconURL = *input.IconURL
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategoryName) {
			return nil, domainerrors.ErrCategoryNameTaken
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
