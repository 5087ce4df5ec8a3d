package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/ratelimit"
)

// StartRateLimitCleanup runs a background loop that periodically removes
// expired identifiers from the rate limiter to prevent unbounded memory growth.
// It stops gracefully when the context is cancelled (e.g. during server shutdown).
//
// Call this in its own goroutine:
//
//	go StartRateLimitCleanup(ctx, limiter, cfg.CleanupInterval)
func StartRateLimitCleanup(ctx context.Context, limiter *ratelimit.Limiter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return

		case <-ticker.C:
			removed := limiter.Cleanup()
			tracked := limiter.TrackedIdentifiers()
			ratelimit.RecordTrackedIdentifiers(tracked)

			slog.Debug("rate limit cleanup completed",
				slog.Int("identifiers_removed", removed),
				slog.Int("identifiers_tracked", tracked))
		}
	}
}
