package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/dashboard_db")
}

func TestLoad_RequiredVarsSet(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017/dashboard_db", cfg.MongoURI)
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, "MONGO_URI is required", err.Error())
}

func TestLoad_DefaultValues(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dashboard_db", cfg.MongoDB)
	assert.Equal(t, "demo-user", cfg.FallbackUserID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomPortAndEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_ClearedFallbackIdentity(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AUTH_FALLBACK_USER_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	// Empty fallback is valid: it enables the 401 path.
	assert.Empty(t, cfg.FallbackUserID)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "-5s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT must be positive")
}
