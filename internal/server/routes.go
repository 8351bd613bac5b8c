package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) registerRoutes() {
	s.echo.Use(correlationMiddleware)
	s.echo.Use(middleware.Recover())
	if s.httpMetrics != nil {
		s.echo.Use(s.httpMetrics.Middleware())
	}
	s.echo.Use(s.errorHandlingMiddleware())

	// Observability endpoints (no identity required)
	s.registerHealthRoutes()
	if s.metricsHandler != nil {
		s.echo.GET("/metrics", echo.WrapHandler(s.metricsHandler))
	}

	// Dashboard API (identity resolved per request)
	api := s.echo.Group("/api/v1", s.identityMiddleware())
	api.GET("/dashboard/:dashboardId", s.handleGetDashboard)
	api.PUT("/dashboard/:dashboardId", s.handleUpsertDashboard)
}
