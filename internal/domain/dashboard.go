package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Widget is a single widget placement within a layout. Entries are free-form
// records (widgetId, x, y, w, h, optional config); the service stores them
// verbatim and never validates their internal shape.
type Widget = map[string]any

// Dashboard is the sole persisted entity: one document per (UserID, DashboardID)
// pair, enforced by a unique compound index at the storage layer.
type Dashboard struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	DashboardID string             `bson:"dashboardId"`
	Layout      []Widget           `bson:"layout"`
	// UpdatedAt is set server-side on every create or update, never by the
	// caller. Always UTC, millisecond precision (BSON datetime resolution).
	UpdatedAt time.Time `bson:"updatedAt"`
}

type DashboardRepository interface {
	Find(ctx context.Context, userID, dashboardID string) (*Dashboard, error)
	InsertDefault(ctx context.Context, userID, dashboardID string) (*Dashboard, error)
	Upsert(ctx context.Context, userID, dashboardID string, layout []Widget) (created bool, err error)
}
