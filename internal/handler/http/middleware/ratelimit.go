package middleware

import (
	"net/http"
	"strconv"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/ratelimit"
)

// exemptPaths are never rate limited: probes and scrapes must not be
// starved by misbehaving API clients.
var exemptPaths = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/live":    true,
	"/metrics": true,
}

// RateLimit enforces the per-identifier request budget.
//
// Every response carries the X-RateLimit-Limit, X-RateLimit-Remaining, and
// X-RateLimit-Reset headers. Denied requests additionally get a Retry-After
// header and a 429 error envelope.
func RateLimit(limiter *ratelimit.Limiter, extractor IPExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exemptPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			decision := limiter.Allow(ExtractIdentifier(r, extractor))
			ratelimit.RecordDecision(decision)

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAtUnix(), 10))

			if !decision.Allowed {
				h.Set("Retry-After", strconv.FormatInt(decision.RetryAfterSeconds(), 10))
				respond.Error(w, r, http.StatusTooManyRequests, respond.CodeRateLimited,
					"rate limit exceeded, retry later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
