package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SPANNER_DATABASE", "projects/p/instances/i/databases/d")
	t.Setenv("WHATSAPP_NUMBER", "6281234567890")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30, cfg.MonthWindowDays)
	assert.Equal(t, int64(3), cfg.LowStockThreshold)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ANALYTICS_MONTH_WINDOW_DAYS", "31")
	t.Setenv("LOW_STOCK_THRESHOLD", "5")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 31, cfg.MonthWindowDays)
	assert.Equal(t, int64(5), cfg.LowStockThreshold)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestFromEnvMissingDatabase(t *testing.T) {
	t.Setenv("WHATSAPP_NUMBER", "6281234567890")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"unknown environment", "ENVIRONMENT", "staging"},
		{"zero month window", "ANALYTICS_MONTH_WINDOW_DAYS", "0"},
		{"negative threshold", "LOW_STOCK_THRESHOLD", "-1"},
		{"zero session ttl", "SESSION_TTL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.env, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
