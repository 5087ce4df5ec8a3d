package middleware

import (
	"net/http"
	"strings"

	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/config"
)

// CORSConfig holds cross-origin resource sharing configuration.
type CORSConfig struct {
	// AllowedOrigins lists the origins allowed to call the API.
	// A single "*" entry allows every origin.
	AllowedOrigins []string
}

// LoadCORSConfig reads CORS configuration from the CORS_ALLOWED_ORIGINS
// environment variable (comma-separated). The default allows every origin,
// which fits a public read-only API.
func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: config.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// allowAll reports whether the wildcard origin is configured.
func (c CORSConfig) allowAll() bool {
	return len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*"
}

// originAllowed reports whether the given origin may call the API.
func (c CORSConfig) originAllowed(origin string) bool {
	if c.allowAll() {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Headers clients may read from cross-origin responses.
const exposedHeaders = "X-Request-ID, X-Process-Time, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset, Retry-After"

// CORS handles cross-origin requests for the read-only API surface.
// Preflight requests are answered with 204 without reaching the handlers;
// all other requests pass through with the CORS response headers attached.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && cfg.originAllowed(origin) {
				h := w.Header()
				if cfg.allowAll() {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
				h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				h.Set("Access-Control-Max-Age", "3600")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
