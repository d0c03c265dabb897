package api

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds client configuration for the assessment platform API.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Token is an optional pre-issued bearer token. Guest registration
	// or login replaces it at runtime.
	Token string

	// Timeout is the per-request timeout. Default: 15s.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.prepdeck.app/v1",
		Timeout: 15 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("PREPDECK_API_URL"); u != "" {
		cfg.BaseURL = strings.TrimRight(u, "/")
	}
	if t := os.Getenv("PREPDECK_API_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("PREPDECK_API_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("PREPDECK_API_URL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("invalid API base URL: %q", c.BaseURL)
	}
	return nil
}
