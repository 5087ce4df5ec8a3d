package news

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
)

// ErrInvalidDate indicates a date query parameter that is neither RFC 3339
// nor a plain calendar date. Handlers map it to INVALID_DATE_FORMAT.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD or RFC 3339")

const dateOnlyLayout = "2006-01-02"

// ParseDate parses a date query parameter. Plain dates parse to midnight UTC.
func ParseDate(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// ParseFilters extracts the shared news filters from the request query
// string: from_date, to_date, source, asset_slug, keyword.
//
// Date bounds are inclusive, so a plain-date to_date covers its whole
// calendar day rather than cutting off at midnight.
func ParseFilters(r *http.Request) (repository.NewsFilters, error) {
	var f repository.NewsFilters
	q := r.URL.Query()

	if v := q.Get("from_date"); v != "" {
		t, _, err := ParseDate(v)
		if err != nil {
			return f, fmt.Errorf("from_date: %w", err)
		}
		f.FromDate = &t
	}

	if v := q.Get("to_date"); v != "" {
		t, dateOnly, err := ParseDate(v)
		if err != nil {
			return f, fmt.Errorf("to_date: %w", err)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.ToDate = &t
	}

	f.Source = q.Get("source")
	f.AssetSlug = q.Get("asset_slug")
	f.Keyword = q.Get("keyword")

	return f, nil
}
