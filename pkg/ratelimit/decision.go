package ratelimit

import (
	"fmt"
	"time"
)

// Decision represents the result of a rate limit check.
//
// It carries everything the transport layer needs to populate rate limit
// headers: the limit, the remaining budget, and when the window frees up.
type Decision struct {
	// Identifier is the subject the decision applies to (API key or IP).
	Identifier string

	// Allowed indicates whether the request should be permitted.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window.
	Remaining int

	// ResetAt is the time when the oldest request leaves the window.
	ResetAt time.Time

	// RetryAfter is how long a denied client should wait before retrying.
	// Zero for allowed requests.
	RetryAfter time.Duration
}

// String returns a human-readable representation of the decision.
func (d *Decision) String() string {
	if d.Allowed {
		return fmt.Sprintf("Decision{Allowed: true, Identifier: %s, Remaining: %d/%d}",
			d.Identifier, d.Remaining, d.Limit)
	}
	return fmt.Sprintf("Decision{Allowed: false, Identifier: %s, RetryAfter: %s}",
		d.Identifier, d.RetryAfter)
}

// ResetAtUnix returns the reset time as a Unix timestamp, for headers like
// X-RateLimit-Reset.
func (d *Decision) ResetAtUnix() int64 {
	return d.ResetAt.Unix()
}

// RetryAfterSeconds returns the retry delay in whole seconds, rounded up so
// a client that waits exactly this long is actually past the reset.
func (d *Decision) RetryAfterSeconds() int64 {
	if d.RetryAfter <= 0 {
		return 0
	}
	seconds := int64((d.RetryAfter + time.Second - 1) / time.Second)
	return seconds
}
