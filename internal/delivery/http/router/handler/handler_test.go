package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, "/health")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestPageParams(t *testing.T) {
	c, _ := newTestContext(t, "/products?skip=40&limit=25")
	skip, limit := pageParams(c)
	assert.Equal(t, 40, skip)
	assert.Equal(t, 25, limit)

	// Missing and malformed values fall back to zero.
	c, _ = newTestContext(t, "/products?skip=abc")
	skip, limit = pageParams(c)
	assert.Equal(t, 0, skip)
	assert.Equal(t, 0, limit)
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	c, _ := newTestContext(t, "/")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	parsed, err := pathUUID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	c.SetParamValues("not-a-uuid")
	_, err = pathUUID(c, "id")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCurrentUserID(t *testing.T) {
	id := uuid.New()

	c, _ := newTestContext(t, "/")
	_, err := currentUserID(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	c.Set("userID", id)
	got, err := currentUserID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	assert.False(t, isAdmin(c))
	c.Set("roles", []string{"admin"})
	assert.True(t, isAdmin(c))
}
