// Package auth provides API key authentication for protected endpoints.
// Keys are static shared secrets distributed to API consumers; there is no
// user identity beyond the key itself.
package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/config"
)

type ctxKey string

// ctxAPIKey carries the authenticated API key through the request context.
const ctxAPIKey ctxKey = "api_key"

// Verifier validates API keys against a configured key set.
// An empty key set disables authentication entirely (open development mode).
type Verifier struct {
	keys []string
}

// NewVerifier creates a verifier for the given key set.
func NewVerifier(keys []string) *Verifier {
	return &Verifier{keys: keys}
}

// NewVerifierFromEnv creates a verifier from the API_KEYS environment
// variable (comma-separated). An unset or empty variable yields an open
// verifier.
func NewVerifierFromEnv() *Verifier {
	return NewVerifier(config.GetEnvStringList("API_KEYS", nil))
}

// Open reports whether the verifier has no configured keys and therefore
// accepts every request.
func (v *Verifier) Open() bool {
	return len(v.keys) == 0
}

// Verify reports whether the presented key is in the configured key set.
// Comparison is constant-time per candidate key.
func (v *Verifier) Verify(presented string) bool {
	if v.Open() {
		return true
	}
	if presented == "" {
		return false
	}
	ok := false
	for _, key := range v.keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(presented)) == 1 {
			ok = true
		}
	}
	return ok
}

// ExtractKey pulls the API key from a request. The Authorization header
// (Bearer scheme) takes precedence; the api_key query parameter is the
// fallback for clients that cannot set headers.
func ExtractKey(r *http.Request) string {
	const prefix = "Bearer "
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, prefix) {
		return strings.TrimPrefix(authz, prefix)
	}
	return r.URL.Query().Get("api_key")
}

// FromContext retrieves the authenticated API key from the context.
// Returns an empty string in open mode or outside the middleware.
func FromContext(ctx context.Context) string {
	if key, ok := ctx.Value(ctxAPIKey).(string); ok {
		return key
	}
	return ""
}

// Middleware enforces API key authentication on everything it wraps.
// Requests with a missing or unknown key receive a 401 error envelope.
// When the verifier is open every request passes through untouched.
func Middleware(v *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v.Open() {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			key := ExtractKey(r)
			if !v.Verify(key) {
				RecordAuthRequest("failure")
				respond.Error(w, r, http.StatusUnauthorized, respond.CodeUnauthorized, "invalid or missing API key")
				return
			}
			RecordAuthRequest("success")
			RecordAuthDuration(time.Since(start))

			ctx := context.WithValue(r.Context(), ctxAPIKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
