package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Techprecient-Open/ic-userdashboard-poc/internal/platform/errors"
)

func newTestContext(srv *Server) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return srv.echo.NewContext(req, rec), rec
}

func TestErrorHandlingMiddleware_StructuredError(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	c, rec := newTestContext(srv)

	err := callHandler(srv, func(echo.Context) error {
		return apperrors.ValidationError("Field 'layout' (array) is required")
	}, c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Field 'layout' (array) is required"}`, rec.Body.String())
}

func TestErrorHandlingMiddleware_WrapsPlainError(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	c, rec := newTestContext(srv)

	err := callHandler(srv, func(echo.Context) error {
		return assert.AnError
	}, c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestErrorHandlingMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	c, _ := newTestContext(srv)

	httpErr := echo.NewHTTPError(http.StatusNotFound, "route not found")
	err := callHandler(srv, func(echo.Context) error {
		return httpErr
	}, c)

	assert.ErrorIs(t, err, httpErr)
}

func TestErrorHandlingMiddleware_NoErrorNoBody(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	c, rec := newTestContext(srv)

	err := callHandler(srv, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
