package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://api.nasa.gov/planetary/apod", cfg.APOD.BaseURL)
	assert.Equal(t, "DEMO_KEY", cfg.APOD.APIKey)
	assert.Equal(t, time.Minute, cfg.RateLimit.Per)
	assert.Equal(t, 30*time.Minute, cfg.Housekeeping.IdleTTL)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APOD_API_KEY", "secret")
	t.Setenv("RATE_LIMIT_PER", "30s")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "secret", cfg.APOD.APIKey)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Per)
	assert.Equal(t, "UTC", cfg.App.Timezone)
}

func TestNew_RejectsNonPositiveRate(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	_, err := New()
	assert.Error(t, err)
}
