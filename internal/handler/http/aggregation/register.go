package aggregation

import (
	"log/slog"
	"net/http"

	newsHandler "github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/news"
	aggUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/aggregation"
)

// Register registers the report routes with the given mux. Every route is
// wrapped with protect, the API-key auth middleware.
//
// These exact-path registrations take precedence over the news slug subtree
// registered by the news package.
func Register(mux *http.ServeMux, svc *aggUC.Service, logger *slog.Logger, protect func(http.Handler) http.Handler) {
	mux.Handle("GET "+newsHandler.BasePath+"/stats", protect(StatsHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET "+newsHandler.BasePath+"/assets", protect(TopAssetsHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET "+newsHandler.BasePath+"/timeline", protect(TimelineHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET "+newsHandler.BasePath+"/source-performance", protect(SourcePerformanceHandler{Svc: svc, Logger: logger}))
}
