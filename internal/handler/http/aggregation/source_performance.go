package aggregation

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/logging"
	aggUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/aggregation"
)

// SourcePerformanceHandler serves the per-source performance report.
type SourcePerformanceHandler struct {
	Svc    *aggUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns per-source totals with asset coverage.
// @Summary      Source performance
// @Description  Returns per-source article totals with the asset lists of every matching article. With a full date range, each row also reports its average articles per day.
// @Tags         reports
// @Security     ApiKeyAuth
// @Produce      json
// @Param        from_date  query  string  false  "Inclusive lower bound on releasedAt"
// @Param        to_date    query  string  false  "Inclusive upper bound on releasedAt"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.ErrorEnvelope
// @Router       /news/source-performance [get]
func (h SourcePerformanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	filters, err := parseReportFilters(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, respond.CodeInvalidDateFormat, err.Error())
		return
	}

	rows, err := h.Svc.SourcePerformance(ctx, filters)
	if err != nil {
		logger.Error("source performance failed", slog.String("error", err.Error()))
		respond.InternalError(w, r, err)
		return
	}

	counts := make([]int64, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, row.TotalNews)
	}
	writeReport(w, rows, totalOf(counts...), echoFilters(filters), start)
}
