package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds all CLI configuration.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Metrics MetricsConfig
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables throttling
	RateBurst int
}

// SessionConfig holds token persistence settings.
type SessionConfig struct {
	// TokenPath overrides the default token file location. Empty means
	// the per-user config directory.
	TokenPath string
}

// MetricsConfig holds client metrics settings.
type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() (*Config, error) {
	return &Config{
		API: APIConfig{
			BaseURL:   getEnv("SAHYOG_API_URL", "http://localhost:8080"),
			Timeout:   getDurationEnv("SAHYOG_API_TIMEOUT", 30*time.Second),
			RateLimit: getFloatEnv("SAHYOG_RATE_LIMIT", 0),
			RateBurst: getIntEnv("SAHYOG_RATE_BURST", 5),
		},
		Session: SessionConfig{
			TokenPath: getEnv("SAHYOG_TOKEN_PATH", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("SAHYOG_METRICS", false),
		},
	}, nil
}

// Validate checks that all configuration values are usable. It returns an
// error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("SAHYOG_API_URL is required"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("SAHYOG_API_URL must be an absolute URL, got %q", c.API.BaseURL))
	}

	if c.API.Timeout <= 0 {
		errs = append(errs, errors.New("SAHYOG_API_TIMEOUT must be positive"))
	}

	if c.API.RateLimit < 0 {
		errs = append(errs, errors.New("SAHYOG_RATE_LIMIT cannot be negative"))
	}
	if c.API.RateLimit > 0 && c.API.RateBurst <= 0 {
		errs = append(errs, errors.New("SAHYOG_RATE_BURST must be positive when rate limiting is enabled"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
