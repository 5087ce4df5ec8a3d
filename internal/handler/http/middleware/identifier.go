// Package middleware provides the HTTP middleware surrounding the API:
// CORS handling, rate limiting, and client identification.
package middleware

import (
	"net/http"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/auth"
)

// Identifier prefixes distinguishing how a client was identified. An API key
// and an IP address can never collide in the limiter's keyspace.
const (
	identifierKeyPrefix = "api_key:"
	identifierIPPrefix  = "ip:"
)

// ExtractIdentifier derives the rate limiting identifier for a request.
// Requests presenting an API key are tracked per key, so one consumer behind
// a NAT does not exhaust the budget of everyone else behind it; anonymous
// requests fall back to the client IP.
func ExtractIdentifier(r *http.Request, extractor IPExtractor) string {
	if key := auth.ExtractKey(r); key != "" {
		return identifierKeyPrefix + key
	}

	ip, err := extractor.ExtractIP(r)
	if err != nil {
		// No parseable IP: use the raw address so malformed peers do
		// not all collapse into a single empty bucket.
		return identifierIPPrefix + r.RemoteAddr
	}
	return identifierIPPrefix + ip
}
