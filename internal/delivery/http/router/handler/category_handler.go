package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCategoryRequest struct {
	Name    string `json:"name" validate:"required"`
	IconURL string `json:"icon_url"`
}

type updateCategoryRequest struct {
	Name    *string `json:"name"`
	IconURL *string `json:"icon_url"`
}

type categoryPageResponse struct {
	Categories any   `json:"categories"`
	Total      int64 `json:"total"`
	NextSkip   *int  `json:"next_skip"`
}

// CreateCategory creates a new category. Admin only.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Name:    req.Name,
		IconURL: req.IconURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// ListCategories returns one page of categories.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	skip, limit := pageParams(c)

	page, err := h.uc.ListCategories(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categoryPageResponse{
		Categories: page.Categories,
		Total:      page.Total,
		NextSkip:   page.NextSkip,
	}, "")
}

// GetCategory returns a single category by ID.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// UpdateCategory changes a category's name or icon. Admin only.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, &usecase.UpdateCategoryInput{
		Name:    req.Name,
		IconURL: req.IconURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory removes a category. Admin only.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
