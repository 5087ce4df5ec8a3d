// Package ratelimit provides framework-agnostic sliding window rate limiting.
//
// The limiter tracks individual request timestamps per identifier and counts
// the requests inside a sliding time window, which avoids the boundary burst
// spikes of fixed window counters. It is designed to be reusable across
// different contexts (HTTP, gRPC, CLI, background jobs).
package ratelimit

import (
	"log/slog"
	"sync"
	"time"
)

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// Limiter is a thread-safe sliding window rate limiter.
//
// Clock skew protection: the limiter tracks the last seen timestamp per
// identifier, and if the clock goes backwards the last seen time is used
// instead. This prevents rate limit bypass through time manipulation.
type Limiter struct {
	limit  int
	window time.Duration
	clock  Clock

	mu       sync.Mutex
	requests map[string][]time.Time
	lastSeen map[string]time.Time
}

// NewLimiter creates a limiter allowing limit requests per window for each
// identifier. A nil clock selects the system clock.
func NewLimiter(limit int, window time.Duration, clock Clock) *Limiter {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Limiter{
		limit:    limit,
		window:   window,
		clock:    clock,
		requests: make(map[string][]time.Time),
		lastSeen: make(map[string]time.Time),
	}
}

// Allow checks and records a request for the given identifier.
// The check and the recording happen under one lock acquisition, so
// concurrent requests cannot slip past the limit between them.
func (l *Limiter) Allow(identifier string) *Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.validTimestamp(identifier)
	cutoff := now.Add(-l.window)

	kept := pruneBefore(l.requests[identifier], cutoff)

	if len(kept) >= l.limit {
		l.requests[identifier] = kept
		// The limit frees up when the oldest request in the window expires.
		resetAt := kept[0].Add(l.window)
		return &Decision{
			Identifier: identifier,
			Allowed:    false,
			Limit:      l.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: resetAt.Sub(now),
		}
	}

	kept = append(kept, now)
	l.requests[identifier] = kept

	return &Decision{
		Identifier: identifier,
		Allowed:    true,
		Limit:      l.limit,
		Remaining:  l.limit - len(kept),
		ResetAt:    kept[0].Add(l.window),
	}
}

// Usage returns the number of requests recorded for the identifier inside
// the current window.
func (l *Limiter) Usage(identifier string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.clock.Now().Add(-l.window)
	return len(pruneBefore(l.requests[identifier], cutoff))
}

// Cleanup drops identifiers whose every request has left the window and
// returns the number of identifiers removed. Run it periodically to keep
// memory bounded.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.clock.Now().Add(-l.window)
	removed := 0
	for id, stamps := range l.requests {
		kept := pruneBefore(stamps, cutoff)
		if len(kept) == 0 {
			delete(l.requests, id)
			delete(l.lastSeen, id)
			removed++
			continue
		}
		l.requests[id] = kept
	}
	return removed
}

// TrackedIdentifiers returns the number of identifiers currently held.
func (l *Limiter) TrackedIdentifiers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}

// validTimestamp returns the current time, clamped so it never moves
// backwards for a given identifier.
func (l *Limiter) validTimestamp(identifier string) time.Time {
	now := l.clock.Now()
	if last, ok := l.lastSeen[identifier]; ok && now.Before(last) {
		slog.Warn("clock skew detected, using last seen timestamp",
			slog.String("identifier", identifier),
			slog.Time("now", now),
			slog.Time("last_seen", last))
		now = last
	}
	l.lastSeen[identifier] = now
	return now
}

// pruneBefore returns the timestamps at or after cutoff. Timestamps are
// appended in order, so a single scan for the first kept index suffices.
func pruneBefore(stamps []time.Time, cutoff time.Time) []time.Time {
	idx := 0
	for idx < len(stamps) && stamps[idx].Before(cutoff) {
		idx++
	}
	return stamps[idx:]
}
