package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
	apperrors "github.com/Techprecient-Open/ic-userdashboard-poc/internal/platform/errors"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/platform/logging"
)

func (s *Server) handleGetDashboard(c echo.Context) error {
	userID, ok := c.Get("userID").(string)
	if !ok {
		return apperrors.InternalError("invalid user identity in context", nil)
	}
	dashboardID := c.Param("dashboardId")
	ctx := c.Request().Context()

	dashboard, err := s.app.GetOrCreate(ctx, userID, dashboardID)
	if err != nil {
		return apperrors.InternalError("Failed to create default dashboard", err).
			WithField("dashboard_id", dashboardID)
	}
	logging.WithDashboard(userID, dashboardID).DebugContext(ctx, "Dashboard fetched")

	if err := c.JSON(http.StatusOK, serializeDashboard(dashboard)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUpsertDashboard(c echo.Context) error {
	userID, ok := c.Get("userID").(string)
	if !ok {
		return apperrors.InternalError("invalid user identity in context", nil)
	}
	dashboardID := c.Param("dashboardId")
	ctx := c.Request().Context()

	// A malformed body is treated as an empty object; it fails below on the
	// missing layout field, not on the parse itself.
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		body = map[string]any{}
	}

	layout, ok := extractLayout(body)
	if !ok {
		return apperrors.ValidationError("Field 'layout' (array) is required").
			WithField("dashboard_id", dashboardID)
	}

	dashboard, created, err := s.app.Upsert(ctx, userID, dashboardID, layout)
	if err != nil {
		return apperrors.InternalError("Failed to upsert dashboard", err).
			WithField("dashboard_id", dashboardID)
	}

	status := "updated"
	code := http.StatusOK
	if created {
		status = "created"
		code = http.StatusCreated
	}

	logging.WithDashboard(userID, dashboardID).InfoContext(ctx, "Dashboard upserted", "status", status)

	resp := upsertResponse{
		Status:    status,
		Dashboard: serializeDashboard(dashboard),
	}
	if err := c.JSON(code, resp); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// extractLayout pulls the layout array out of the request body. Entries must
// be objects; their internal shape is not validated.
func extractLayout(body map[string]any) ([]domain.Widget, bool) {
	raw, ok := body["layout"]
	if !ok {
		return nil, false
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	layout := make([]domain.Widget, 0, len(entries))
	for _, entry := range entries {
		widget, ok := entry.(map[string]any)
		if !ok {
			return nil, false
		}
		layout = append(layout, widget)
	}
	return layout, true
}
