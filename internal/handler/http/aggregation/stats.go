package aggregation

import (
	"log/slog"
	"net/http"
	"time"

	newsHandler "github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/news"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/logging"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
	aggUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/aggregation"
)

// parseReportFilters extracts the filters report endpoints honor. Keyword
// and asset filters are list-only and never applied to reports.
func parseReportFilters(r *http.Request) (repository.NewsFilters, error) {
	f, err := newsHandler.ParseFilters(r)
	if err != nil {
		return f, err
	}
	f.Keyword = ""
	f.AssetSlug = ""
	return f, nil
}

// totalOf sums the count column of a report for the envelope's total field.
func totalOf(counts ...int64) *int64 {
	var sum int64
	for _, c := range counts {
		sum += c
	}
	return &sum
}

// StatsHandler serves article-count statistics grouped by source or date.
type StatsHandler struct {
	Svc    *aggUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns article counts grouped by source or by day.
// @Summary      News statistics
// @Description  Returns article counts grouped by source (default) or by calendar day.
// @Tags         reports
// @Security     ApiKeyAuth
// @Produce      json
// @Param        group_by   query  string  false  "Grouping" Enums(source, date) default(source)
// @Param        from_date  query  string  false  "Inclusive lower bound on releasedAt"
// @Param        to_date    query  string  false  "Inclusive upper bound on releasedAt"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.ErrorEnvelope
// @Router       /news/stats [get]
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	filters, err := parseReportFilters(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, respond.CodeInvalidDateFormat, err.Error())
		return
	}

	groupBy := r.URL.Query().Get("group_by")
	if groupBy == "" {
		groupBy = "source"
	}

	echo := echoFilters(filters)
	echo.GroupBy = groupBy

	switch groupBy {
	case "source":
		stats, err := h.Svc.StatsBySource(ctx, filters)
		if err != nil {
			logger.Error("stats by source failed", slog.String("error", err.Error()))
			respond.InternalError(w, r, err)
			return
		}
		counts := make([]int64, 0, len(stats))
		for _, s := range stats {
			counts = append(counts, s.Count)
		}
		writeReport(w, stats, totalOf(counts...), echo, start)

	case "date":
		buckets, err := h.Svc.Timeline(ctx, filters, repository.IntervalDaily)
		if err != nil {
			logger.Error("stats by date failed", slog.String("error", err.Error()))
			respond.InternalError(w, r, err)
			return
		}
		counts := make([]int64, 0, len(buckets))
		for _, b := range buckets {
			counts = append(counts, b.Count)
		}
		writeReport(w, buckets, totalOf(counts...), echo, start)

	default:
		respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError,
			"group_by must be source or date")
	}
}
