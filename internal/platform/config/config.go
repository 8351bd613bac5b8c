package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" default:"development"`
	Port     string `env:"PORT" default:"8080"`
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB_NAME" default:"dashboard_db"`

	// FallbackUserID is the identity assumed when the X-User-Id header is
	// absent. Clearing it makes unauthenticated requests fail with 401.
	FallbackUserID string `env:"AUTH_FALLBACK_USER_ID" default:"demo-user"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if cfg.MongoDB == "" {
		return fmt.Errorf("MONGO_DB_NAME must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return nil
}
