// Package config reads console settings from the environment. Command-line
// flags override these values; see internal/cli.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "WISHLIST_CONSOLE"

const (
	EnvBaseURL     = EnvPrefix + "_BASE_URL"
	EnvTimeout     = EnvPrefix + "_TIMEOUT"
	EnvLogLevel    = EnvPrefix + "_LOG_LEVEL"
	EnvLogFile     = EnvPrefix + "_LOG_FILE"
	EnvJournal     = EnvPrefix + "_JOURNAL"
	EnvFormat      = EnvPrefix + "_FORMAT"
	EnvMetricsAddr = EnvPrefix + "_METRICS_ADDR"
)

type Config struct {
	BaseURL  string        `envconfig:"BASE_URL" default:"http://localhost:8080"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"10s"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`

	// LogFile receives logs. Empty means stderr for commands and nowhere
	// for the interactive console, which owns the terminal.
	LogFile string `envconfig:"LOG_FILE"`

	// Journal is the path of the sqlite operation journal; empty disables it.
	Journal string `envconfig:"JOURNAL"`

	Format      string `envconfig:"FORMAT" default:"json"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New(EnvBaseURL + " is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", EnvTimeout, c.Timeout)
	}
	switch strings.ToLower(c.Format) {
	case "json", "edn", "table", "html":
	default:
		return fmt.Errorf("%s must be one of json|edn|table|html, got %q", EnvFormat, c.Format)
	}
	return nil
}
