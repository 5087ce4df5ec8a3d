package news

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/logging"
	newsUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/news"
)

// ListHandler serves the paginated news listing.
type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists news articles.
// @Summary      List news articles
// @Description  Returns news articles filtered and cursor-paginated. Pass the next_cursor from a previous response to fetch the following page.
// @Tags         news
// @Security     ApiKeyAuth
// @Produce      json
// @Param        from_date  query  string  false  "Inclusive lower bound on releasedAt (YYYY-MM-DD or RFC 3339)"
// @Param        to_date    query  string  false  "Inclusive upper bound on releasedAt (YYYY-MM-DD or RFC 3339)"
// @Param        source     query  string  false  "Exact source match"
// @Param        asset_slug query  string  false  "Exact asset slug match"
// @Param        keyword    query  string  false  "Case-insensitive substring match across title, subtitle and content"
// @Param        limit      query  int     false  "Items per page" default(100) minimum(10) maximum(1000)
// @Param        cursor     query  string  false  "Opaque cursor token from a previous response"
// @Param        sort_by    query  string  false  "Sort field" Enums(releasedAt, title, createdAt) default(releasedAt)
// @Param        order      query  string  false  "Sort direction" Enums(asc, desc) default(desc)
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.ErrorEnvelope
// @Failure      401 {object} respond.ErrorEnvelope
// @Failure      500 {object} respond.ErrorEnvelope
// @Router       /news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		pagination.RecordError("validation")
		respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError, err.Error())
		return
	}

	filters, err := ParseFilters(r)
	if err != nil {
		logger.Warn("invalid filter parameters", slog.String("error", err.Error()))
		pagination.RecordError("validation")
		respond.Error(w, r, http.StatusBadRequest, respond.CodeInvalidDateFormat, err.Error())
		return
	}

	page, err := h.Svc.List(ctx, params, filters)
	if err != nil {
		h.respondListError(w, r, logger, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, params.HasCursor())
	pagination.RecordDuration("handler", time.Since(start).Seconds())

	logger.Info("news list served",
		slog.Int("returned", page.Meta.Returned),
		slog.Bool("has_next", page.Meta.HasNext),
		slog.String("sort_by", params.SortBy))

	respond.Success(w, http.StatusOK, ToDTOs(page.Items), &page.Meta, start)
}

func (h ListHandler) respondListError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, pagination.ErrInvalidCursor):
		logger.Warn("invalid cursor", slog.String("error", err.Error()))
		pagination.RecordError("invalid_cursor")
		respond.Error(w, r, http.StatusBadRequest, respond.CodeInvalidCursor, "invalid or corrupted cursor token")
	case errors.Is(err, newsUC.ErrInvalidDateRange),
		errors.Is(err, newsUC.ErrFutureDate),
		errors.Is(err, newsUC.ErrInvalidKeyword):
		logger.Warn("invalid filters", slog.String("error", err.Error()))
		pagination.RecordError("validation")
		respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError, err.Error())
	default:
		logger.Error("news list failed", slog.String("error", err.Error()))
		pagination.RecordError("database")
		respond.InternalError(w, r, err)
	}
}
