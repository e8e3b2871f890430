package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product with its images and variants.
// GORM's Create with associations inserts into products, product_images
// and product_variants together.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	for i := range productM.Images {
		product.Images[i].ID = productM.Images[i].ID
		product.Images[i].ProductID = productM.Images[i].ProductID
	}
	for i := range productM.Variants {
		product.Variants[i].ID = productM.Variants[i].ID
		product.Variants[i].ProductID = productM.Variants[i].ProductID
	}

	return nil
}

// FindByID retrieves a product hydrated with category, images and variants.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Variants").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindVariantByID retrieves a single variant row.
func (repo *productRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find product variant by id")
	}

	variant := toVariantDomain(&variantM)

	return &variant, nil
}

// List retrieves hydrated products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter, skip, limit int) ([]*entity.Product, error) {
	var models []model.ProductModel
	if err := applyProductFilter(repo.db.WithContext(ctx), filter).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Variants").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(models), nil
}

// Count returns the number of products matching the filter.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64
	if err := applyProductFilter(repo.db.WithContext(ctx), filter).
		Model(&model.ProductModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// ListMostViewed returns products ordered by views_count descending.
func (repo *productRepository) ListMostViewed(ctx context.Context, limit int) ([]*entity.Product, error) {
	var models []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Variants").
		Order("views_count DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list most viewed products")
	}

	return toProductDomainSlice(models), nil
}

// ListMostSold returns products ordered by sold_count descending.
func (repo *productRepository) ListMostSold(ctx context.Context, limit int) ([]*entity.Product, error) {
	var models []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Variants").
		Order("sold_count DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list most sold products")
	}

	return toProductDomainSlice(models), nil
}

// Update persists scalar field changes to an existing product.
// Counters and the cached rating are excluded; they have dedicated
// atomic operations.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"category_id": product.CategoryID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ReplaceImages swaps the product's image list wholesale.
func (repo *productRepository) ReplaceImages(ctx context.Context, productID uuid.UUID, urls []string) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product images")
	}

	if len(urls) == 0 {
		return nil
	}

	images := make([]model.ProductImageModel, 0, len(urls))
	for i, url := range urls {
		images = append(images, model.ProductImageModel{
			ProductID: productID,
			URL:       url,
			Position:  i,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&images).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product images")
	}

	return nil
}

// ReplaceVariants swaps the product's variant list wholesale.
func (repo *productRepository) ReplaceVariants(ctx context.Context, productID uuid.UUID, variants []entity.ProductVariant) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductVariantModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product variants")
	}

	if len(variants) == 0 {
		return nil
	}

	models := make([]model.ProductVariantModel, 0, len(variants))
	for _, v := range variants {
		models = append(models, model.ProductVariantModel{
			ProductID: productID,
			Name:      v.Name,
			Price:     v.Price,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product variants")
	}

	return nil
}

// IncrementViews atomically adds one to views_count. The increment runs
// as a single UPDATE expression so concurrent viewers never lose counts.
func (repo *productRepository) IncrementViews(ctx context.Context, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment product views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementSold atomically adds quantity to sold_count.
func (repo *productRepository) IncrementSold(ctx context.Context, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		UpdateColumn("sold_count", gorm.Expr("sold_count + ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment product sold count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetRating persists the recomputed cached rating average.
func (repo *productRepository) SetRating(ctx context.Context, productID uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		UpdateColumn("rating", rating)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set product rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product; images, variants and feedback cascade.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func applyProductFilter(db *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.Query != "" {
		db = db.Where("name ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PriceMin != nil {
		db = db.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		db = db.Where("price <= ?", *filter.PriceMax)
	}

	return db
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]entity.ProductImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, entity.ProductImage{
			ID:        data.Images[i].ID,
			ProductID: data.Images[i].ProductID,
			URL:       data.Images[i].URL,
			Position:  data.Images[i].Position,
		})
	}

	variants := make([]entity.ProductVariant, 0, len(data.Variants))
	for i := range data.Variants {
		variants = append(variants, toVariantDomain(&data.Variants[i]))
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Rating:      data.Rating,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		Images:      images,
		Variants:    variants,
		ViewsCount:  data.ViewsCount,
		SoldCount:   data.SoldCount,
		CreatedAt:   data.CreatedAt,
	}
}

func toProductDomainSlice(models []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products
}

func toVariantDomain(data *model.ProductVariantModel) entity.ProductVariant {
	return entity.ProductVariant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		Price:     data.Price,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]model.ProductImageModel, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, model.ProductImageModel{
			URL:      data.Images[i].URL,
			Position: i,
		})
	}

	variants := make([]model.ProductVariantModel, 0, len(data.Variants))
	for i := range data.Variants {
		variants = append(variants, model.ProductVariantModel{
			Name:  data.Variants[i].Name,
			Price: data.Variants[i].Price,
		})
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Rating:      data.Rating,
		CategoryID:  data.CategoryID,
		Images:      images,
		Variants:    variants,
	}
}
