package config_test

import (
	"testing"
	"time"

	"barangay-portal/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "")
		t.Setenv("ANALYTICS_CACHE_TTL", "")
		t.Setenv("DB_TIMEZONE", "")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, time.Minute, cfg.AnalyticsCacheTTL)
		assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
		assert.Equal(t, 5, cfg.DBMaxRetries)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "UTC", cfg.Postgres.TimeZone)
		assert.Equal(t, time.UTC, cfg.Location)
	})

	t.Run("database zone shared with dashboards", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_TIMEZONE", "Asia/Manila")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "Asia/Manila", cfg.Location.String())
		assert.Contains(t, cfg.Postgres.DSN(), "TimeZone=Asia/Manila")
	})

	t.Run("negative unknown timezone", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_TIMEZONE", "Mars/Olympus")

		_, err := config.Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DB_TIMEZONE")
	})

	t.Run("negative missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("negative invalid duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ANALYTICS_CACHE_TTL", "soon")

		_, err := config.Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ANALYTICS_CACHE_TTL")
	})

	t.Run("kafka required for worker", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("KAFKA_BROKER", "")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Error(t, cfg.RequireKafka())
	})
}
