package aggregation

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/logging"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
	aggUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/aggregation"
)

// TimelineHandler serves time-bucketed article counts.
type TimelineHandler struct {
	Svc    *aggUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns article counts bucketed by day, ISO week, or month.
// @Summary      News timeline
// @Description  Returns article counts bucketed by the requested interval, ordered chronologically.
// @Tags         reports
// @Security     ApiKeyAuth
// @Produce      json
// @Param        interval   query  string  false  "Bucket size" Enums(daily, weekly, monthly) default(daily)
// @Param        from_date  query  string  false  "Inclusive lower bound on releasedAt"
// @Param        to_date    query  string  false  "Inclusive upper bound on releasedAt"
// @Param        source     query  string  false  "Exact source match"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.ErrorEnvelope
// @Router       /news/timeline [get]
func (h TimelineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	filters, err := parseReportFilters(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, respond.CodeInvalidDateFormat, err.Error())
		return
	}

	interval := repository.TimelineInterval(r.URL.Query().Get("interval"))

	buckets, err := h.Svc.Timeline(ctx, filters, interval)
	if err != nil {
		if errors.Is(err, aggUC.ErrInvalidInterval) {
			respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError,
				"interval must be daily, weekly, or monthly")
			return
		}
		logger.Error("timeline failed", slog.String("error", err.Error()))
		respond.InternalError(w, r, err)
		return
	}

	counts := make([]int64, 0, len(buckets))
	for _, b := range buckets {
		counts = append(counts, b.Count)
	}

	echo := echoFilters(filters)
	if interval == "" {
		echo.Interval = string(repository.IntervalDaily)
	} else {
		echo.Interval = string(interval)
	}
	writeReport(w, buckets, totalOf(counts...), echo, start)
}
