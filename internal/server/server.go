// Package server exposes the HTTP API: dashboard get and upsert, health
// probes, version and metrics endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/identity"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/metrics"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/platform/config"
)

type appService interface {
	GetOrCreate(ctx context.Context, userID, dashboardID string) (*domain.Dashboard, error)
	Upsert(ctx context.Context, userID, dashboardID string, layout []domain.Widget) (*domain.Dashboard, bool, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app      appService
	resolver identity.Resolver

	httpMetrics    *metrics.HTTPMetrics
	metricsHandler http.Handler
	healthChecks   []HealthCheck
	startTime      time.Time
}

// NewServer wires the HTTP layer. reg may be nil to disable metrics endpoints
// (used by tests that do not care about instrumentation).
func NewServer(cfg *config.Config, app appService, resolver identity.Resolver, reg *prometheus.Registry, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		resolver:     resolver,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	if reg != nil {
		srv.httpMetrics = metrics.NewHTTPMetrics(reg)
		srv.metricsHandler = metrics.Handler(reg)
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
