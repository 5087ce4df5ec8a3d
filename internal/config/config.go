// Package config assembles application configuration from environment
// variables. Component-specific settings (pagination limits, rate limit
// window, Mongo pool sizes) are loaded by their own packages; this package
// covers the server process itself.
package config

import (
	"fmt"

	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/config"
)

// Defaults for the HTTP server.
const (
	DefaultAppName = "mongodb-news-api"
	DefaultPort    = 8000
	DefaultHost    = "0.0.0.0"
)

// AppConfig holds the server process settings.
type AppConfig struct {
	Name     string // Service name, used in logs and traces
	Version  string // Reported by /health and the root endpoint
	Host     string // Listen host
	Port     int    // Listen port
	Database string // MongoDB database name
	NewsColl string // News collection name
}

// Addr returns the listen address in host:port form.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the server configuration from the environment.
//
// Environment variables:
//   - APP_NAME: service name (default "mongodb-news-api")
//   - APP_VERSION: version string (default "dev")
//   - HOST, PORT: listen address (default 0.0.0.0:8000)
//   - MONGODB_DATABASE: database name (default "news")
//   - MONGODB_NEWS_COLLECTION: collection name (default "news")
func Load() AppConfig {
	return AppConfig{
		Name:     config.GetEnvString("APP_NAME", DefaultAppName),
		Version:  config.GetEnvString("APP_VERSION", "dev"),
		Host:     config.GetEnvString("HOST", DefaultHost),
		Port:     config.GetEnvInt("PORT", DefaultPort),
		Database: config.GetEnvString("MONGODB_DATABASE", "news"),
		NewsColl: config.GetEnvString("MONGODB_NEWS_COLLECTION", "news"),
	}
}
