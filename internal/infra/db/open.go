// Package db manages the MongoDB client lifecycle: connection pool
// configuration, connect-time ping verification, and shutdown.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/config"
)

// ConnectionConfig holds MongoDB connection pool configuration.
type ConnectionConfig struct {
	URI            string
	MinPoolSize    uint64
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		URI:            "mongodb://localhost:27017",
		MinPoolSize:    10,
		MaxPoolSize:    50,
		ConnectTimeout: 5 * time.Second,
	}
}

// LoadConnectionConfig reads connection configuration from environment
// variables, falling back to defaults:
//   - MONGODB_URI: connection string (mongodb:// or mongodb+srv://)
//   - MONGODB_MIN_POOL_SIZE / MONGODB_MAX_POOL_SIZE: pool bounds
//   - MONGODB_CONNECT_TIMEOUT: connect-time ping deadline
func LoadConnectionConfig() ConnectionConfig {
	defaults := DefaultConnectionConfig()
	return ConnectionConfig{
		URI:            config.GetEnvString("MONGODB_URI", defaults.URI),
		MinPoolSize:    uint64(config.GetEnvInt("MONGODB_MIN_POOL_SIZE", int(defaults.MinPoolSize))),
		MaxPoolSize:    uint64(config.GetEnvInt("MONGODB_MAX_POOL_SIZE", int(defaults.MaxPoolSize))),
		ConnectTimeout: config.GetEnvDuration("MONGODB_CONNECT_TIMEOUT", defaults.ConnectTimeout),
	}
}

// Open creates a MongoDB client and verifies connectivity with a ping
// against the primary. The returned client owns a connection pool
// configured from cfg.
func Open(ctx context.Context, cfg ConnectionConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxPoolSize(cfg.MaxPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	slog.Info("mongodb connection established",
		slog.Uint64("min_pool_size", cfg.MinPoolSize),
		slog.Uint64("max_pool_size", cfg.MaxPoolSize))

	return client, nil
}

// Close disconnects the client with a bounded timeout.
func Close(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}
