// Package config loads runtime settings from the environment.
//
// Every knob has a sensible default, so a plain `nbametrics` invocation
// works without any environment setup. A local .env file (loaded by the
// CLI entry point) can override individual values during development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide settings shared by all subcommands.
type Config struct {
	// BaseURL is the root of the stats API, without a trailing slash.
	BaseURL string `env:"NBA_API_BASE_URL" envDefault:"https://stats.nba.com/stats"`

	// HTTPTimeout bounds a single request/response cycle.
	HTTPTimeout time.Duration `env:"NBA_HTTP_TIMEOUT" envDefault:"30s"`

	// RequestDelay is the minimum spacing between consecutive API
	// requests. The stats endpoints throttle aggressively, so the
	// default is deliberately slow.
	RequestDelay time.Duration `env:"NBA_REQUEST_DELAY" envDefault:"5s"`

	// Model is the default Anthropic model used by the ask command.
	Model string `env:"NBAMETRICS_MODEL" envDefault:"claude-haiku-4-5-20251001"`
}

// FromEnv parses the environment into a Config, applying defaults for
// unset variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
