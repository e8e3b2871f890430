package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	VariantID *uuid.UUID `json:"variant_id"`
	Quantity  int        `json:"quantity" validate:"gt=0"`
}

type createOrderRequest struct {
	Items               []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddressText string             `json:"delivery_address_text" validate:"required"`
	DeliveryLat         *float64           `json:"delivery_lat"`
	DeliveryLng         *float64           `json:"delivery_lng"`
	DeliveryNote        string             `json:"delivery_note"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type orderPageResponse struct {
	Orders   any   `json:"orders"`
	Total    int64 `json:"total"`
	NextSkip *int  `json:"next_skip"`
}

// CreateOrder places a new order for the authenticated caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, &usecase.CreateOrderInput{
		Items:               items,
		DeliveryAddressText: req.DeliveryAddressText,
		DeliveryLat:         req.DeliveryLat,
		DeliveryLng:         req.DeliveryLng,
		DeliveryNote:        req.DeliveryNote,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListMyOrders returns one page of the caller's own orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	skip, limit := pageParams(c)

	page, err := h.uc.ListMyOrders(c.Request().Context(), userID, skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page.Orders, "")
}

// ListMyOrdersPaged returns one page of the caller's own orders with totals.
func (h *OrderHandler) ListMyOrdersPaged(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	skip, limit := pageParams(c)

	page, err := h.uc.ListMyOrders(c.Request().Context(), userID, skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orderPageResponse{
		Orders:   page.Orders,
		Total:    page.Total,
		NextSkip: page.NextSkip,
	}, "")
}

// ListAllOrders returns one page of every order. Admin only.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	skip, limit := pageParams(c)

	page, err := h.uc.ListAllOrders(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page.Orders, "")
}

// ListAllOrdersPaged returns one page of every order with totals. Admin only.
func (h *OrderHandler) ListAllOrdersPaged(c echo.Context) error {
	skip, limit := pageParams(c)

	page, err := h.uc.ListAllOrders(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orderPageResponse{
		Orders:   page.Orders,
		Total:    page.Total,
		NextSkip: page.NextSkip,
	}, "")
}

// GetOrder returns one hydrated order, owner or admin scoped.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, isAdmin(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// UpdateStatus transitions an order to a new status. Admin only.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// OrderQR streams the order's pickup QR code as a PNG.
func (h *OrderHandler) OrderQR(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.OrderQR(c.Request().Context(), userID, isAdmin(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
