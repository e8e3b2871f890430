// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"slices"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated caller's ID placed on the
// context by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// isAdmin reports whether the authenticated caller carries the admin role.
func isAdmin(c echo.Context) bool {
	roles, _ := c.Get("roles").([]string)

	return slices.Contains(roles, "admin")
}

// pathUUID parses a UUID path parameter, mapping garbage to InvalidInput.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WrapMessage("invalid " + name)
	}

	return id, nil
}

// pageParams reads skip/limit query parameters. Missing or malformed
// values fall back to zero; the use cases normalize from there.
func pageParams(c echo.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.QueryParam("skip"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))

	return skip, limit
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
