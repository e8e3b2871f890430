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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a catalog entry with its images and variants.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input.Name, input.Price, input.Variants); err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Images:      imagesFromURLs(input.Images),
		Variants:    variantsFromInput(input.Variants),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID))

	return srv.findHydrated(ctx, product.ID)
}

// GetProduct returns the hydrated product and counts the view. The
// increment is a single atomic UPDATE; the returned snapshot includes it.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if err := srv.productRepo.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to increment product views")
	}

	return srv.findHydrated(ctx, id)
}

// ListProducts returns products matching the filter.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	skip, limit := normalizePage(input.Skip, input.Limit)

	products, err := srv.productRepo.List(ctx, productFilter(input), skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListProductsPaged returns one page of products with pagination metadata.
func (srv *productService) ListProductsPaged(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	skip, limit := normalizePage(input.Skip, input.Limit)
	filter := productFilter(input)

	products, err := srv.productRepo.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	total, err := srv.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		NextSkip: usecase.NextSkip(skip, limit, total),
	}, nil
}

// UpdateProduct applies partial scalar changes and, when supplied,
// replaces the image and variant lists wholesale. All writes share one
// transaction so a half-updated product is never visible.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return domainerrors.ErrValidationFailed.WrapMessage("product name must not be empty")
			}
			product.Name = name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
			}
			product.Price = *input.Price
		}
		if input.CategoryID != nil {
			if _, err := repoFactory.CategoryRepo().FindByID(ctx, *input.CategoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrCategoryNotFound
				}

				return errors.Wrap(err, "failed to find category")
			}
			product.CategoryID = *input.CategoryID
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		if input.Images != nil {
			if err := productRepo.ReplaceImages(ctx, id, *input.Images); err != nil {
				return errors.Wrap(err, "failed to replace product images")
			}
		}
		if input.Variants != nil {
			for _, v := range *input.Variants {
				if strings.TrimSpace(v.Name) == "" || v.Price < 0 {
					return domainerrors.ErrValidationFailed.WrapMessage("variants need a name and a non-negative price")
				}
			}
			if err := productRepo.ReplaceVariants(ctx, id, variantsFromInput(*input.Variants)); err != nil {
				return errors.Wrap(err, "failed to replace product variants")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.findHydrated(ctx, id)
}

// DeleteProduct removes a product; images, variants and feedback cascade.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func (srv *productService) findHydrated(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func validateProductInput(name string, price float64, variants []usecase.VariantInput) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name must not be empty")
	}
	if price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	for _, v := range variants {
		if strings.TrimSpace(v.Name) == "" || v.Price < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("variants need a name and a non-negative price")
		}
	}

	return nil
}

func productFilter(input *usecase.ListProductsInput) repository.ProductFilter {
	return repository.ProductFilter{
		Query:      strings.TrimSpace(input.Query),
		CategoryID: input.CategoryID,
		PriceMin:   input.PriceMin,
		PriceMax:   input.PriceMax,
	}
}

func imagesFromURLs(urls []string) []entity.ProductImage {
	images := make([]entity.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, entity.ProductImage{URL: url, Position: i})
	}

	return images
}

func variantsFromInput(inputs []usecase.VariantInput) []entity.ProductVariant {
	variants := make([]entity.ProductVariant, 0, len(inputs))
	for _, v := range inputs {
		variants = append(variants, entity.ProductVariant{Name: strings.TrimSpace(v.Name), Price: v.Price})
	}

	return variants
}
