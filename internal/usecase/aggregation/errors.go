// Package aggregation provides use cases for the reporting endpoints.
// It validates report parameters, runs the aggregation repository, and
// derives the ratios the raw pipelines cannot compute in one pass.
package aggregation

import "errors"

// Sentinel errors for aggregation use case operations.
var (
	// ErrInvalidInterval indicates an unsupported timeline bucket size.
	ErrInvalidInterval = errors.New("interval must be one of daily, weekly, monthly")

	// ErrInvalidLimit indicates a top-assets limit outside the accepted range.
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")
)
