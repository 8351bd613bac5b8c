package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/app"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/identity"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/metrics"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/mongodb"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/platform/config"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/platform/logging"
	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/server"
)

const startupTimeout = 10 * time.Second

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupMongo(cfg *config.Config) (*mongodriver.Client, *mongodriver.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	db := client.Database(cfg.MongoDB)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		slog.Error("Failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	return client, db
}

func runGracefulShutdown(srv *server.Server, client *mongodriver.Client, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if err := client.Disconnect(shutdownCtx); err != nil {
			slog.Error("MongoDB disconnect error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	client, db := setupMongo(cfg)

	clock := clockwork.NewRealClock()
	dashboardRepo := mongodb.NewDashboardRepo(db, clock)
	appSvc := app.NewService(dashboardRepo)
	resolver := identity.NewHeaderResolver(cfg.FallbackUserID)

	healthChecks := []server.HealthCheck{
		{Name: "mongodb", Check: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}},
	}

	registry := metrics.NewRegistry()
	srv := server.NewServer(cfg, appSvc, resolver, registry, healthChecks)

	done := runGracefulShutdown(srv, client, cfg.ShutdownTimeout)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
