// Package news provides use cases for querying news articles.
// It implements filter validation, cursor-paginated listing, and single
// article retrieval, delegating persistence to the news repository.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that the requested article was not found.
	ErrNewsNotFound = errors.New("news article not found")

	// ErrInvalidSlug indicates that the provided slug is empty or malformed.
	ErrInvalidSlug = errors.New("invalid article slug")

	// ErrInvalidDateRange indicates that the requested date range is
	// inverted (from after to).
	ErrInvalidDateRange = errors.New("from_date must not be after to_date")

	// ErrFutureDate indicates that the requested range starts in the future.
	ErrFutureDate = errors.New("from_date must not be in the future")

	// ErrInvalidKeyword indicates that the search keyword is outside the
	// accepted length bounds.
	ErrInvalidKeyword = errors.New("keyword must be between 2 and 100 characters")
)
