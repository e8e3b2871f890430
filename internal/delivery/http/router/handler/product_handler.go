package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type variantRequest struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gt=0"`
}

type createProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       float64          `json:"price" validate:"gt=0"`
	CategoryID  uuid.UUID        `json:"category_id" validate:"required"`
	Images      []string         `json:"images"`
	Variants    []variantRequest `json:"variants" validate:"dive"`
}

type updateProductRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	CategoryID  *uuid.UUID        `json:"category_id"`
	Images      *[]string         `json:"images"`
	Variants    *[]variantRequest `json:"variants"`
}

type productPageResponse struct {
	Products any   `json:"products"`
	Total    int64 `json:"total"`
	NextSkip *int  `json:"next_skip"`
}

// listInput assembles the catalog filter from query parameters.
func listInput(c echo.Context) (*usecase.ListProductsInput, error) {
	input := &usecase.ListProductsInput{Query: c.QueryParam("q")}
	input.Skip, input.Limit = pageParams(c)

	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		input.CategoryID = &id
	}
	if raw := c.QueryParam("price_min"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		input.PriceMin = &min
	}
	if raw := c.QueryParam("price_max"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		input.PriceMax = &max
	}

	return input, nil
}

func toVariantInputs(variants []variantRequest) []usecase.VariantInput {
	inputs := make([]usecase.VariantInput, 0, len(variants))
	for _, v := range variants {
		inputs = append(inputs, usecase.VariantInput{Name: v.Name, Price: v.Price})
	}

	return inputs
}

// CreateProduct creates a product with its images and variants. Admin only.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
		Variants:    toVariantInputs(req.Variants),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// ListProducts returns a filtered catalog slice without totals.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog filter")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListProductsPaged returns a filtered catalog page with total and next_skip.
func (h *ProductHandler) ListProductsPaged(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog filter")
	}

	page, err := h.uc.ListProductsPaged(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productPageResponse{
		Products: page.Products,
		Total:    page.Total,
		NextSkip: page.NextSkip,
	}, "")
}

// GetProduct returns one hydrated product and counts the view.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// UpdateProduct applies a partial update. Admin only.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
	}
	if req.Variants != nil {
		variants := toVariantInputs(*req.Variants)
		input.Variants = &variants
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product and its dependents. Admin only.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
