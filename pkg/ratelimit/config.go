package ratelimit

import (
	"log/slog"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/config"
)

// Config holds rate limiting configuration.
type Config struct {
	// Enabled toggles rate limiting globally.
	Enabled bool

	// Limit is the number of requests allowed per window per identifier.
	Limit int

	// Window is the sliding window duration.
	Window time.Duration

	// CleanupInterval is how often idle identifiers are evicted.
	CleanupInterval time.Duration
}

// DefaultConfig returns the default rate limiting configuration:
// 1000 requests per hour per identifier.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		Limit:           1000,
		Window:          time.Hour,
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig reads rate limiting configuration from environment variables,
// falling back to defaults on missing or invalid values:
//   - RATE_LIMIT_ENABLED: enable/disable rate limiting (default: true)
//   - RATE_LIMIT_PER_HOUR: requests per window (default: 1000)
//   - RATE_LIMIT_WINDOW: window duration (default: 1h)
//   - RATE_LIMIT_CLEANUP_INTERVAL: idle identifier eviction period (default: 5m)
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.Enabled = config.GetEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)

	limit := config.GetEnvInt("RATE_LIMIT_PER_HOUR", cfg.Limit)
	if limit <= 0 {
		slog.Warn("invalid RATE_LIMIT_PER_HOUR, using default",
			slog.Int("value", limit),
			slog.Int("default", cfg.Limit))
	} else {
		cfg.Limit = limit
	}

	window := config.GetEnvDuration("RATE_LIMIT_WINDOW", cfg.Window)
	if err := config.ValidatePositiveDuration(window); err != nil {
		slog.Warn("invalid RATE_LIMIT_WINDOW, using default",
			slog.Duration("value", window),
			slog.Duration("default", cfg.Window),
			slog.String("error", err.Error()))
	} else {
		cfg.Window = window
	}

	interval := config.GetEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	if err := config.ValidatePositiveDuration(interval); err != nil {
		slog.Warn("invalid RATE_LIMIT_CLEANUP_INTERVAL, using default",
			slog.Duration("value", interval),
			slog.Duration("default", cfg.CleanupInterval),
			slog.String("error", err.Error()))
	} else {
		cfg.CleanupInterval = interval
	}

	return cfg
}
