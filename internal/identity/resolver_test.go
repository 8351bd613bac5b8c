package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
)

func TestResolve_HeaderPresent(t *testing.T) {
	resolver := NewHeaderResolver("demo-user")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "user-a")

	userID, err := resolver.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, "user-a", userID)
}

func TestResolve_HeaderAbsent_UsesFallback(t *testing.T) {
	resolver := NewHeaderResolver("demo-user")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	userID, err := resolver.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, "demo-user", userID)
}

func TestResolve_NoFallback_Unauthorized(t *testing.T) {
	resolver := NewHeaderResolver("")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	userID, err := resolver.Resolve(req)

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, userID)
}

func TestResolve_HeaderVerbatim_NoValidation(t *testing.T) {
	resolver := NewHeaderResolver("demo-user")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "  weird value!@#  ")

	userID, err := resolver.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, "  weird value!@#  ", userID)
}
