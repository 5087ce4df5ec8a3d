package aggregation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/logging"
	aggUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/aggregation"
)

// TopAssetsHandler serves the most-mentioned-assets report.
type TopAssetsHandler struct {
	Svc    *aggUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns the most mentioned assets with their share of matching articles.
// @Summary      Top mentioned assets
// @Description  Returns the assets most mentioned by matching articles, each with its mention count and percentage of the matching article total.
// @Tags         reports
// @Security     ApiKeyAuth
// @Produce      json
// @Param        limit      query  int     false  "Maximum rows" default(10) minimum(1) maximum(100)
// @Param        from_date  query  string  false  "Inclusive lower bound on releasedAt"
// @Param        to_date    query  string  false  "Inclusive upper bound on releasedAt"
// @Param        source     query  string  false  "Exact source match"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.ErrorEnvelope
// @Router       /news/assets [get]
func (h TopAssetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	filters, err := parseReportFilters(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, respond.CodeInvalidDateFormat, err.Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError,
				"limit must be an integer")
			return
		}
	}

	mentions, err := h.Svc.TopAssets(ctx, filters, limit)
	if err != nil {
		if errors.Is(err, aggUC.ErrInvalidLimit) {
			respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError,
				"limit must be between 1 and 100")
			return
		}
		logger.Error("top assets failed", slog.String("error", err.Error()))
		respond.InternalError(w, r, err)
		return
	}

	echo := echoFilters(filters)
	if limit == 0 {
		echo.Limit = aggUC.DefaultTopAssetsLimit
	} else {
		echo.Limit = limit
	}
	writeReport(w, mentions, nil, echo, start)
}
