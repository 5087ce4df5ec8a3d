package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents cursor pagination query parameters from an HTTP request.
type Params struct {
	Limit  int    // Items per page
	Cursor string // Opaque cursor token from a previous response ("" on the first page)
	SortBy string // Sort field (releasedAt, title, createdAt)
	Order  Order  // Sort direction
}

// HasCursor reports whether a cursor was present on the request.
func (p Params) HasCursor() bool {
	return p.Cursor != ""
}

// allowedSortFields enumerates the fields clients may sort by.
var allowedSortFields = map[string]bool{
	SortFieldReleasedAt: true,
	SortFieldTitle:      true,
	SortFieldCreatedAt:  true,
}

// ParseQueryParams parses cursor pagination parameters from the request
// query string. Defaults: limit from config, sort_by=releasedAt, order=desc.
//
// Query parameters:
//   - limit: Items per page (must be between config.MinLimit and config.MaxLimit)
//   - cursor: Opaque token from a previous response, passed back verbatim
//   - sort_by: One of releasedAt, title, createdAt
//   - order: asc or desc
//
// Returns an error if parameters are invalid. Cursor tokens are not decoded
// here; decoding happens in the service layer where failures map to
// INVALID_CURSOR.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Limit:  config.DefaultLimit,
		SortBy: SortFieldReleasedAt,
		Order:  OrderDesc,
	}

	q := r.URL.Query()

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < config.MinLimit || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between %d and %d", config.MinLimit, config.MaxLimit)
		}
		params.Limit = limit
	}

	params.Cursor = q.Get("cursor")

	if sortBy := q.Get("sort_by"); sortBy != "" {
		if !allowedSortFields[sortBy] {
			return params, fmt.Errorf("invalid query parameter: sort_by must be one of releasedAt, title, createdAt")
		}
		params.SortBy = sortBy
	}

	if order := q.Get("order"); order != "" {
		switch Order(order) {
		case OrderAsc, OrderDesc:
			params.Order = Order(order)
		default:
			return params, fmt.Errorf("invalid query parameter: order must be asc or desc")
		}
	}

	return params, nil
}
