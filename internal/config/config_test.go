package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "bff-service", cfg.Primary.AppName)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "change-me-in-production", cfg.Auth.SecretKey)
	assert.Equal(t, 30, cfg.Auth.AccessTokenExpireMinutes)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Observability.NewRelic.Enabled())
	assert.Equal(t, cfg.Primary.AppName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BFF_PRIMARY__ENV", "production")
	t.Setenv("BFF_PRIMARY__APP_NAME", "bff-test")
	t.Setenv("BFF_PRIMARY__DEBUG", "true")
	t.Setenv("BFF_SERVER__PORT", "9090")
	t.Setenv("BFF_DATABASE__URL", "postgres://u:p@db:5432/app?sslmode=disable")
	t.Setenv("BFF_DATABASE__MAX_OPEN_CONNS", "10")
	t.Setenv("BFF_REDIS__ADDRESS", "redis:6379")
	t.Setenv("BFF_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("BFF_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Primary.Env)
	assert.True(t, cfg.Primary.Debug)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db:5432/app?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Redis.Enabled())

	assert.Equal(t, "bff-test", cfg.Observability.ServiceName)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	// Untouched nested defaults survive a partial override.
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	t.Setenv("BFF_PRIMARY__ENV", "staging")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("BFF_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "invalid logging level")
}

func TestLoadConfig_MinConnsAboveMax(t *testing.T) {
	t.Setenv("BFF_DATABASE__MAX_OPEN_CONNS", "2")
	t.Setenv("BFF_DATABASE__MIN_CONNS", "5")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = EnvProduction
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = EnvLocal
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestHealthChecksConfig_Has(t *testing.T) {
	h := HealthChecksConfig{Enabled: true, Checks: []string{"database"}}
	assert.True(t, h.Has("database"))
	assert.False(t, h.Has("redis"))

	h.Enabled = false
	assert.False(t, h.Has("database"))
}
