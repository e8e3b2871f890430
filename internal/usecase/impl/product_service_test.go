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

func createTestProductService(t *testing.T) (
	usecase.ProductUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockProductRepository,
	*mockRepo.MockCategoryRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	productService := NewProductService(ProductServiceParams{
		TxManager:    txManager,
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return productService, txManager, productRepo, categoryRepo
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	productService, _, productRepo, categoryRepo := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	productID := uuid.New()

	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	productRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, product *entity.Product) {
		assert.Equal(t, "Iced Latte", product.Name)
		assert.Len(t, product.Images, 2)
		assert.Equal(t, 0, product.Images[0].Position)
		assert.Equal(t, 1, product.Images[1].Position)
		assert.Len(t, product.Variants, 1)
		product.ID = productID
	}).Return(nil)
	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, Name: "Iced Latte"}, nil)

	product, err := productService.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       " Iced Latte ",
		Price:      4.5,
		CategoryID: categoryID,
		Images:     []string{"/media/a.png", "/media/b.png"},
		Variants:   []usecase.VariantInput{{Name: "Large", Price: 5.5}},
	})

	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
}

func TestProductService_CreateProduct_InvalidInput(t *testing.T) {
	productService, _, _, _ := createTestProductService(t)

	ctx := context.Background()

	_, err := productService.CreateProduct(ctx, &usecase.CreateProductInput{Name: "", Price: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = productService.CreateProduct(ctx, &usecase.CreateProductInput{Name: "X", Price: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = productService.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "X",
		Price: 1,
		Variants: []usecase.VariantInput{
			{Name: "", Price: 1},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	productService, _, _, categoryRepo := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	product, err := productService.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       "Iced Latte",
		Price:      4.5,
		CategoryID: categoryID,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_GetProduct_CountsView(t *testing.T) {
	productService, _, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().IncrementViews(ctx, productID).Return(nil)
	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, ViewsCount: 8}, nil)

	product, err := productService.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, int64(8), product.ViewsCount)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	productService, _, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().IncrementViews(ctx, productID).Return(repository.ErrProductNotFound)

	product, err := productService.GetProduct(ctx, productID)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProductsPaged_ForwardsFilter(t *testing.T) {
	productService, _, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	priceMax := 10.0
	wantFilter := repository.ProductFilter{Query: "latte", CategoryID: &categoryID, PriceMax: &priceMax}

	productRepo.EXPECT().List(ctx, wantFilter, 0, 20).Return([]*entity.Product{{ID: uuid.New()}}, nil)
	productRepo.EXPECT().Count(ctx, wantFilter).Return(int64(1), nil)

	page, err := productService.ListProductsPaged(ctx, &usecase.ListProductsInput{
		Query:      " latte ",
		CategoryID: &categoryID,
		PriceMax:   &priceMax,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Nil(t, page.NextSkip)
}

func TestProductService_UpdateProduct_ReplacesImagesAndVariants(t *testing.T) {
	productService, txManager, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	factory := mockRepo.NewMockRepositoryFactory(t)
	name := "Flat White"
	images := []string{"/media/new.png"}
	variants := []usecase.VariantInput{{Name: "Double", Price: 6}}

	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, Name: "Latte"}, nil).Once()
	productRepo.EXPECT().Update(ctx, mock.Anything).Run(func(_ context.Context, product *entity.Product) {
		assert.Equal(t, "Flat White", product.Name)
	}).Return(nil)
	productRepo.EXPECT().ReplaceImages(ctx, productID, images).Return(nil)
	productRepo.EXPECT().ReplaceVariants(ctx, productID, []entity.ProductVariant{{Name: "Double", Price: 6}}).Return(nil)
	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, Name: "Flat White"}, nil).Once()

	product, err := productService.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
		Name:     &name,
		Images:   &images,
		Variants: &variants,
	})

	require.NoError(t, err)
	assert.Equal(t, "Flat White", product.Name)
}

func TestProductService_UpdateProduct_NotFoundRollsBack(t *testing.T) {
	productService, txManager, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	factory := mockRepo.NewMockRepositoryFactory(t)

	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().ProductRepo().Return(productRepo)
	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := productService.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	productService, _, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().Delete(ctx, productID).Return(repository.ErrProductNotFound)

	err := productService.DeleteProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
