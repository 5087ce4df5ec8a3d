// Package pathutil provides URL path helpers shared by the HTTP handlers:
// slug extraction for article routes and path normalization for metrics
// labels.
package pathutil

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidSlug is returned when the slug in the URL path is invalid.
var ErrInvalidSlug = errors.New("invalid slug")

// slugPattern matches the slugs the ingestion side produces: lowercase
// alphanumerics separated by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ExtractSlug extracts and validates an article slug from a URL path.
//
// Parameters:
//   - path: The full URL path (e.g., "/api/v1/news/btc-rally")
//   - prefix: The prefix to remove (e.g., "/api/v1/news/")
//
// Returns ErrInvalidSlug when the remainder is empty, contains further path
// segments, or does not look like a slug.
func ExtractSlug(path, prefix string) (string, error) {
	slug := strings.TrimPrefix(path, prefix)
	if slug == path || slug == "" || strings.Contains(slug, "/") {
		return "", ErrInvalidSlug
	}
	if !slugPattern.MatchString(slug) {
		return "", ErrInvalidSlug
	}
	return slug, nil
}
