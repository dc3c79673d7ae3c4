package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
		SentryUrl string `env:"SENTRY_URL"`
		Timezone  string `env:"APP_TIMEZONE" env-default:"America/New_York" env-description:"zone used to decide what 'today' is for the date picker"`
	}
	APOD struct {
		BaseURL string `env:"APOD_BASE_URL" env-default:"https://api.nasa.gov/planetary/apod"`
		APIKey  string `env:"APOD_API_KEY" env-default:"DEMO_KEY"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"10"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"5"`
	}
	Housekeeping struct {
		Interval time.Duration `env:"HOUSEKEEPING_INTERVAL" env-default:"10m"`
		IdleTTL  time.Duration `env:"CLIENT_IDLE_TTL" env-default:"30m"`
	}
}

// New reads the configuration from the process environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	if cfg.RateLimit.Requests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", cfg.RateLimit.Requests)
	}
	return cfg, nil
}

// Addr is the listen address of the page server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}
