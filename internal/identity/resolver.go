// Package identity resolves the caller's user identity from an inbound request.
//
// The default implementation trusts a plain header (no token verification).
// The Resolver interface exists so a real verifying implementation can be
// substituted without touching the handlers.
package identity

import (
	"net/http"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
)

// UserIDHeader carries the caller identity on every request.
const UserIDHeader = "X-User-Id"

// Resolver produces a non-empty user identity for a request, or
// domain.ErrUnauthorized if none can be determined.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

// HeaderResolver reads the identity verbatim from Header. When the header is
// absent it falls back to Fallback; an empty Fallback makes the request fail
// with domain.ErrUnauthorized instead.
type HeaderResolver struct {
	Header   string
	Fallback string
}

// NewHeaderResolver builds a HeaderResolver on the standard X-User-Id header.
func NewHeaderResolver(fallback string) *HeaderResolver {
	return &HeaderResolver{Header: UserIDHeader, Fallback: fallback}
}

func (h *HeaderResolver) Resolve(r *http.Request) (string, error) {
	if userID := r.Header.Get(h.Header); userID != "" {
		return userID, nil
	}
	if h.Fallback != "" {
		return h.Fallback, nil
	}
	return "", domain.ErrUnauthorized
}
