package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_SetsUserAndRoles(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"admin"},
	}, nil)

	c, _ := newAuthContext(t, "Bearer good-token")

	var nextCalled bool
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, userID, c.Get("userID"))
		assert.Equal(t, []string{"admin"}, c.Get("roles"))

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	next := func(echo.Context) error { return nil }

	c, rec := newAuthContext(t, "")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newAuthContext(t, "Basic abc123")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
	c, rec = newAuthContext(t, "Bearer expired")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	next := func(echo.Context) error { return nil }

	c, rec := newAuthContext(t, "")
	c.Set("roles", []string{"user"})
	require.NoError(t, m.RequireRole("admin")(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, _ = newAuthContext(t, "")
	c.Set("roles", []string{"admin"})
	var nextCalled bool
	require.NoError(t, m.RequireRole("admin")(func(echo.Context) error {
		nextCalled = true

		return nil
	})(c))
	assert.True(t, nextCalled)

	// Missing role info (Authenticate never ran) is also forbidden.
	c, rec = newAuthContext(t, "")
	require.NoError(t, m.RequireRole("admin")(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
