// Package aggregation exposes the news report endpoints: counts by source,
// top mentioned assets, time-bucketed counts, and per-source performance.
package aggregation

import (
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
)

// filtersEcho echoes the filters that were applied to a report, so clients
// can tell an empty result from a misapplied query.
type filtersEcho struct {
	FromDate *string `json:"from_date"`
	ToDate   *string `json:"to_date"`
	Source   string  `json:"source,omitempty"`
	GroupBy  string  `json:"group_by,omitempty"`
	Interval string  `json:"interval,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}

// reportEnvelope is the success body for report endpoints. Unlike the news
// envelope it carries no pagination; reports are returned whole.
type reportEnvelope struct {
	Success  bool             `json:"success"`
	Data     any              `json:"data"`
	Total    *int64           `json:"total,omitempty"`
	Filters  filtersEcho      `json:"filters"`
	Metadata respond.Metadata `json:"metadata"`
}

func echoFilters(f repository.NewsFilters) filtersEcho {
	e := filtersEcho{Source: f.Source}
	if f.FromDate != nil {
		s := f.FromDate.UTC().Format(time.RFC3339)
		e.FromDate = &s
	}
	if f.ToDate != nil {
		s := f.ToDate.UTC().Format(time.RFC3339)
		e.ToDate = &s
	}
	return e
}

func writeReport(w http.ResponseWriter, data any, total *int64, filters filtersEcho, start time.Time) {
	respond.JSON(w, http.StatusOK, reportEnvelope{
		Success: true,
		Data:    data,
		Total:   total,
		Filters: filters,
		Metadata: respond.Metadata{
			QueryTimeMS: float64(time.Since(start).Microseconds()) / 1000.0,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			APIVersion:  respond.APIVersion,
		},
	})
}
