package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateSelfRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

type adminUpdateUserRequest struct {
	IsActive *bool `json:"is_active"`
	IsAdmin  *bool `json:"is_admin"`
}

type userPageResponse struct {
	Users    any   `json:"users"`
	Total    int64 `json:"total"`
	NextSkip *int  `json:"next_skip"`
}

// GetMe returns the authenticated caller's own account.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateMe lets the caller change their own email or password.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateSelfRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	user, err := h.uc.UpdateSelf(c.Request().Context(), userID, &usecase.UpdateSelfInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account updated successfully")
}

// ListUsers returns one page of accounts. Admin only.
func (h *UserHandler) ListUsers(c echo.Context) error {
	skip, limit := pageParams(c)

	page, err := h.uc.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userPageResponse{
		Users:    page.Users,
		Total:    page.Total,
		NextSkip: page.NextSkip,
	}, "")
}

// GetUser returns a single account by ID. Admin only.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateUser toggles another account's active/admin flags. Admin only.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req adminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	user, err := h.uc.AdminUpdateUser(c.Request().Context(), id, &usecase.AdminUpdateUserInput{
		IsActive: req.IsActive,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account updated successfully")
}

// DeleteUser removes an account. Admin only.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}
