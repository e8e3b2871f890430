package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendationHandler holds dependencies for popularity handlers.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		uc:     uc,
		logger: logger,
	}
}

// MostViewed returns the products with the highest view counters.
func (h *RecommendationHandler) MostViewed(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.uc.MostViewed(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// MostSold returns the products with the highest sold counters.
func (h *RecommendationHandler) MostSold(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.uc.MostSold(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}
