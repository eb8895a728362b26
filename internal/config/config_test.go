package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads with defaults", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "test-token")
		t.Setenv("DB_PASSWORD", "test-password")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "test-token", cfg.BotToken)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 30*time.Minute, cfg.StateIdleTimeout)
	})

	t.Run("missing bot token", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "")
		t.Setenv("DB_PASSWORD", "test-password")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("missing database password", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "test-token")
		t.Setenv("DB_PASSWORD", "")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("custom idle timeout", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "test-token")
		t.Setenv("DB_PASSWORD", "test-password")
		t.Setenv("STATE_IDLE_TIMEOUT", "15m")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 15*time.Minute, cfg.StateIdleTimeout)
	})

	t.Run("invalid idle timeout", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "test-token")
		t.Setenv("DB_PASSWORD", "test-password")
		t.Setenv("STATE_IDLE_TIMEOUT", "ahora")

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db",
			Port:     "5433",
			Name:     "tienda",
			User:     "bot",
			Password: "s3cret",
		},
	}

	assert.Equal(t,
		"host=db port=5433 user=bot password=s3cret dbname=tienda sslmode=disable",
		cfg.DSN(),
	)
}
