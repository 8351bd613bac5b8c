package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
)

// DashboardRepo implements domain.DashboardRepository backed by MongoDB.
// It is the sole owner of the stored document shape and the timestamp policy.
type DashboardRepo struct {
	col   *mongo.Collection
	clock clockwork.Clock
}

// NewDashboardRepo creates a DashboardRepo on the given database.
func NewDashboardRepo(db *mongo.Database, clock clockwork.Clock) *DashboardRepo {
	return &DashboardRepo{
		col:   db.Collection(CollectionDashboards),
		clock: clock,
	}
}

func (r *DashboardRepo) key(userID, dashboardID string) bson.M {
	return bson.M{"userId": userID, "dashboardId": dashboardID}
}

// now returns the write timestamp: UTC, truncated to the BSON datetime
// resolution so a write-then-read round trip compares equal.
func (r *DashboardRepo) now() time.Time {
	return r.clock.Now().UTC().Truncate(time.Millisecond)
}

// Find looks up the document for the exact compound key. No side effects.
func (r *DashboardRepo) Find(ctx context.Context, userID, dashboardID string) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	err := r.col.FindOne(ctx, r.key(userID, dashboardID)).Decode(&dashboard)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrDashboardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find dashboard: %w", err)
	}
	return &dashboard, nil
}

// InsertDefault creates the document with an empty layout. A concurrent
// first read may win the insert; that surfaces as domain.ErrDashboardExists
// via the unique index, and the caller falls back to a read.
func (r *DashboardRepo) InsertDefault(ctx context.Context, userID, dashboardID string) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{
		UserID:      userID,
		DashboardID: dashboardID,
		Layout:      []domain.Widget{},
		UpdatedAt:   r.now(),
	}

	res, err := r.col.InsertOne(ctx, dashboard)
	if mongo.IsDuplicateKeyError(err) {
		return nil, domain.ErrDashboardExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert default dashboard: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		dashboard.ID = oid
	}
	return dashboard, nil
}

// Upsert replaces layout and updatedAt wholesale, creating the document if
// absent. Returns whether a new document was created.
func (r *DashboardRepo) Upsert(ctx context.Context, userID, dashboardID string, layout []domain.Widget) (bool, error) {
	if layout == nil {
		layout = []domain.Widget{}
	}

	res, err := r.col.UpdateOne(ctx,
		r.key(userID, dashboardID),
		bson.M{"$set": bson.M{
			"layout":    layout,
			"updatedAt": r.now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("failed to upsert dashboard: %w", err)
	}

	return res.UpsertedCount > 0, nil
}
