package news

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/pathutil"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/logging"
	newsUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/news"
)

// GetHandler serves single-article lookups by slug.
type GetHandler struct {
	Svc    *newsUC.Service
	Prefix string // route prefix the slug follows, e.g. "/api/v1/news/"
	Logger *slog.Logger
}

// ServeHTTP fetches one news article by slug.
// @Summary      Get a news article
// @Description  Returns a single article by its slug, including the full content.
// @Tags         news
// @Security     ApiKeyAuth
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.ErrorEnvelope
// @Failure      401 {object} respond.ErrorEnvelope
// @Failure      404 {object} respond.ErrorEnvelope
// @Failure      500 {object} respond.ErrorEnvelope
// @Router       /news/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	slug, err := pathutil.ExtractSlug(r.URL.Path, h.Prefix)
	if err != nil {
		logger.Warn("invalid slug", slog.String("path", r.URL.Path))
		respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError, "invalid article slug")
		return
	}

	article, err := h.Svc.GetBySlug(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, newsUC.ErrNewsNotFound):
			respond.Error(w, r, http.StatusNotFound, respond.CodeNotFound, "news article not found: "+slug)
		case errors.Is(err, newsUC.ErrInvalidSlug):
			respond.Error(w, r, http.StatusBadRequest, respond.CodeValidationError, "invalid article slug")
		default:
			logger.Error("news lookup failed",
				slog.String("slug", slug),
				slog.String("error", err.Error()))
			respond.InternalError(w, r, err)
		}
		return
	}

	logger.Info("news article served", slog.String("slug", slug))
	respond.Success(w, http.StatusOK, ToDTO(article), nil, start)
}
