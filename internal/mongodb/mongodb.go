// Package mongodb implements the document store adapter: connection lifecycle,
// index bootstrap, and the dashboard repository.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionDashboards holds one document per (userId, dashboardId) pair.
const CollectionDashboards = "user_dashboards"

// Connect establishes a client with a verified connection. The caller owns the
// client and must Disconnect it at shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	slog.Info("MongoDB connected")
	return client, nil
}

// EnsureIndexes creates the unique compound index on (userId, dashboardId).
// The index is the source of truth for the one-document-per-key invariant;
// repository code relies on it instead of re-checking.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionDashboards).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "dashboardId", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("userId_1_dashboardId_1_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create dashboard index: %w", err)
	}

	slog.Info("MongoDB indexes ensured", "collection", CollectionDashboards)
	return nil
}
