package pagination

// Document is the minimal projection the page assembler needs from a
// collection document: its unique identifier and the value of the current
// sort field. Everything else about the document is opaque to this package.
type Document interface {
	// DocumentID returns the unique identifier of the document.
	DocumentID() string
	// SortValue returns the document's value for the given sort field.
	SortValue(field string) any
}

// Meta contains cursor pagination metadata included in API responses.
type Meta struct {
	NextCursor *string `json:"next_cursor"` // Cursor for the next page (null if no more items)
	PrevCursor *string `json:"prev_cursor"` // Cursor for the previous page (null on the first page)
	HasNext    bool    `json:"has_next"`    // Whether more items exist after this page
	HasPrev    bool    `json:"has_prev"`    // Whether a cursor was present on the request
	Limit      int     `json:"limit"`       // Number of items requested
	Returned   int     `json:"returned"`    // Number of items actually returned
}

// Page is an assembled page of documents plus its derived cursor metadata.
// Pages are constructed per-request and never persisted; the cursor tokens
// round-trip through the client between requests.
type Page[T Document] struct {
	Items []T
	Meta  Meta
}

// AssemblePage builds a page from an over-fetched result set.
//
// Precondition: items were fetched with sort (sortField, _id) in the same
// direction and a query limit of limit+1. The extra row, when present, only
// signals that a next page exists and is dropped from the page body.
//
// The next cursor encodes the identifier and sort value of the last returned
// document; the prev cursor encodes those of the first. hasPrev is supplied
// by the caller (true whenever a cursor was present on the inbound request)
// and is never derived from the result set.
func AssemblePage[T Document](items []T, limit int, sortField string, hasPrev bool) (Page[T], error) {
	hasNext := len(items) > limit
	if hasNext {
		items = items[:limit]
	}

	meta := Meta{
		HasNext:  hasNext,
		HasPrev:  hasPrev,
		Limit:    limit,
		Returned: len(items),
	}

	if hasNext && len(items) > 0 {
		last := items[len(items)-1]
		token, err := EncodeCursor(map[string]any{
			FieldID:   last.DocumentID(),
			sortField: last.SortValue(sortField),
		})
		if err != nil {
			return Page[T]{}, err
		}
		meta.NextCursor = &token
	}

	if hasPrev && len(items) > 0 {
		first := items[0]
		token, err := EncodeCursor(map[string]any{
			FieldID:   first.DocumentID(),
			sortField: first.SortValue(sortField),
		})
		if err != nil {
			return Page[T]{}, err
		}
		meta.PrevCursor = &token
	}

	return Page[T]{Items: items, Meta: meta}, nil
}
