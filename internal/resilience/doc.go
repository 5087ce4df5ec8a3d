// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes implementations of circuit breakers and retry logic to keep the
// API responsive when MongoDB degrades.
//
// The package supports:
//   - Circuit breakers for MongoDB read operations
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	coll := circuitbreaker.NewMongoCollection(client.Database("news").Collection("news"))
//	cursor, err := coll.Find(ctx, filter)
//
//	retryConfig := retry.StartupConfig()
//	err := retry.WithBackoff(ctx, retryConfig, func() error {
//	    return pingDatabase(ctx)
//	})
package resilience
