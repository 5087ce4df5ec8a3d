package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization for optimal performance (<1μs per operation).
var pathPatterns = []*PathPattern{
	// Article detail route with slug
	{Pattern: regexp.MustCompile(`^/api/v1/news/[a-z0-9]+(?:-[a-z0-9]+)*$`), Template: "/api/v1/news/:slug"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts slug paths (e.g., /api/v1/news/btc-rally) to template format
// (e.g., /api/v1/news/:slug). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/v1/news/btc-rally")       // "/api/v1/news/:slug"
//	NormalizePath("/api/v1/news")                 // "/api/v1/news" (unchanged)
//	NormalizePath("/api/v1/news/stats")           // "/api/v1/news/stats" (unchanged, see below)
//	NormalizePath("/health")                      // "/health" (unchanged)
//	NormalizePath("/metrics")                     // "/metrics" (unchanged)
//
// Static report routes like /api/v1/news/stats also match the slug shape,
// so they are checked first and keep their own label.
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/api/v1/news/btc-rally?limit=1") // "/api/v1/news/:slug"
//	NormalizePath("/api/v1/news/btc-rally/")        // "/api/v1/news/:slug"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if staticPaths[path] {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	return path
}

// staticPaths are the fixed routes that would otherwise match the slug
// pattern. They keep their own metrics label.
var staticPaths = map[string]bool{
	"/api/v1/news/stats":              true,
	"/api/v1/news/assets":             true,
	"/api/v1/news/timeline":           true,
	"/api/v1/news/source-performance": true,
}
