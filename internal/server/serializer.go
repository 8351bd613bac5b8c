package server

import (
	"time"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
)

// dashboardResponse is the wire shape of a dashboard document.
type dashboardResponse struct {
	UserID      string          `json:"userId"`
	DashboardID string          `json:"dashboardId"`
	Layout      []domain.Widget `json:"layout"`
	UpdatedAt   *string         `json:"updatedAt"`
}

type upsertResponse struct {
	Status    string             `json:"status"`
	Dashboard *dashboardResponse `json:"dashboard"`
}

// serializeDashboard maps a document to its wire shape. The timestamp is
// normalized to UTC before formatting, so the rendered value always carries
// the "Z" designator; a never-set timestamp serializes as null.
func serializeDashboard(d *domain.Dashboard) *dashboardResponse {
	if d == nil {
		return nil
	}

	resp := &dashboardResponse{
		UserID:      d.UserID,
		DashboardID: d.DashboardID,
		Layout:      d.Layout,
	}
	if resp.Layout == nil {
		resp.Layout = []domain.Widget{}
	}
	if !d.UpdatedAt.IsZero() {
		ts := d.UpdatedAt.UTC().Format(time.RFC3339Nano)
		resp.UpdatedAt = &ts
	}
	return resp
}
