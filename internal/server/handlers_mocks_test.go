package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/identity"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	getOrCreateFn func(ctx context.Context, userID, dashboardID string) (*domain.Dashboard, error)
	upsertFn      func(ctx context.Context, userID, dashboardID string, layout []domain.Widget) (*domain.Dashboard, bool, error)
}

func (m *mockAppService) GetOrCreate(ctx context.Context, userID, dashboardID string) (*domain.Dashboard, error) {
	if m.getOrCreateFn != nil {
		return m.getOrCreateFn(ctx, userID, dashboardID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAppService) Upsert(ctx context.Context, userID, dashboardID string, layout []domain.Widget) (*domain.Dashboard, bool, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, dashboardID, layout)
	}
	return nil, false, errors.New("not implemented")
}

func emptyDashboard(userID, dashboardID string) *domain.Dashboard {
	return &domain.Dashboard{
		UserID:      userID,
		DashboardID: dashboardID,
		Layout:      []domain.Widget{},
		UpdatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:         "test",
		Port:           "8080",
		FallbackUserID: "demo-user",
	}

	srv := NewServer(cfg, app, identity.NewHeaderResolver("demo-user"), nil, nil)

	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func withResolver(r identity.Resolver) func(*Server) {
	return func(s *Server) {
		s.resolver = r
	}
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(s *Server, handler echo.HandlerFunc, c echo.Context) error {
	return s.errorHandlingMiddleware()(handler)(c)
}
