// Package config provides runtime configuration values for the service.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds configuration knobs for the HTTP server, cache and limiter.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	CacheTTL           time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	CacheSweepInterval time.Duration `envconfig:"CACHE_SWEEP_INTERVAL" default:"2m"`

	RateLimit     int           `envconfig:"RATE_LIMIT" default:"100"`
	RateWindow    time.Duration `envconfig:"RATE_WINDOW" default:"1m"`
	RateIdleTTL   time.Duration `envconfig:"RATE_IDLE_TTL" default:"15m"`
	RateKeyHeader string        `envconfig:"RATE_KEY_HEADER" default:"X-Api-Key"`

	SeedPath string `envconfig:"SEED_PATH"`
}

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
