package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := NewErrorMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrProductNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	// Wrapping with context must not hide the taxonomy mapping.
	rec, body := handleError(t, domainerrors.ErrForbidden.WrapMessage("delete comment"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	// The driver error must not leak to the client.
	assert.NotContains(t, body.Error.Message, "pq:")
}
