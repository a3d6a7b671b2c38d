// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environments.
const (
	Development = "development"
	Production  = "production"
)

// Config holds all runtime settings.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`

	// SpannerDatabase is the full database path:
	// projects/<p>/instances/<i>/databases/<d>
	SpannerDatabase string `envconfig:"SPANNER_DATABASE" required:"true"`

	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	MonthWindowDays   int   `envconfig:"ANALYTICS_MONTH_WINDOW_DAYS" default:"30"`
	LowStockThreshold int64 `envconfig:"LOW_STOCK_THRESHOLD" default:"3"`

	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	// WhatsAppNumber is the store's number in international format without
	// the leading plus, e.g. 6281234567890.
	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER" required:"true"`

	// ImageBucket is the GCS bucket for product images. Empty disables
	// image uploads.
	ImageBucket string `envconfig:"IMAGE_BUCKET"`
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Environment != Development && c.Environment != Production {
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if c.MonthWindowDays <= 0 {
		return fmt.Errorf("ANALYTICS_MONTH_WINDOW_DAYS must be positive, got %d", c.MonthWindowDays)
	}
	if c.LowStockThreshold <= 0 {
		return fmt.Errorf("LOW_STOCK_THRESHOLD must be positive, got %d", c.LowStockThreshold)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
