package pagination

import "github.com/Farhad-Valipour/MongoDB-News-API/pkg/config"

// Config holds pagination limit settings.
// These values can be loaded from environment variables.
type Config struct {
	DefaultLimit int // Default items per page when limit is not supplied
	MinLimit     int // Minimum allowed items per page
	MaxLimit     int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration.
// Default values: limit=100, min=10, max=1000
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 100,
		MinLimit:     10,
		MaxLimit:     1000,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MIN_LIMIT: Minimum items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//
// Falls back to DefaultConfig() values if the variables are not set.
func LoadFromEnv() Config {
	defaults := DefaultConfig()
	return Config{
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", defaults.DefaultLimit),
		MinLimit:     config.GetEnvInt("PAGINATION_MIN_LIMIT", defaults.MinLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", defaults.MaxLimit),
	}
}
