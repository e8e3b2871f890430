package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	categoryService := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return categoryService, categoryRepo
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	categoryService, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()

	categoryRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, category *entity.Category) {
		assert.Equal(t, "Beverages", category.Name)
		category.ID = uuid.New()
	}).Return(nil)

	category, err := categoryService.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name:    "  Beverages  ",
		IconURL: "https://cdn.example.com/beverages.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "Beverages", category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCategoryService_CreateCategory_EmptyName(t *testing.T) {
	categoryService, _ := createTestCategoryService(t)

	category, err := categoryService.CreateCategory(context.Background(), &usecase.CreateCategoryInput{Name: "   "})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	categoryService, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()

	categoryRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateCategoryName)

	category, err := categoryService.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Beverages"})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
}

func TestCategoryService_ListCategories_Pagination(t *testing.T) {
	categoryService, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	categories := []*entity.Category{{ID: uuid.New(), Name: "Beverages"}, {ID: uuid.New(), Name: "Snacks"}}

	categoryRepo.EXPECT().List(ctx, 0, 20).Return(categories, nil)
	categoryRepo.EXPECT().Count(ctx).Return(int64(2), nil)

	page, err := categoryService.ListCategories(ctx, 0, 0)

	require.NoError(t, err)
	assert.Len(t, page.Categories, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Nil(t, page.NextSkip)
}

func TestCategoryService_UpdateCategory_RenameConflict(t *testing.T) {
	categoryService, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()
	name := "Snacks"

	categoryRepo.EXPECT().FindByID(ctx, id).Return(&entity.Category{ID: id, Name: "Beverages"}, nil)
	categoryRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrDuplicateCategoryName)

	category, err := categoryService.UpdateCategory(ctx, id, &usecase.UpdateCategoryInput{Name: &name})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	categoryService, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()

	categoryRepo.EXPECT().Delete(ctx, id).Return(repository.ErrCategoryNotFound)

	err := categoryService.DeleteCategory(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
