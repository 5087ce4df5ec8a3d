package news

import (
	"log/slog"
	"net/http"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
	newsUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/news"
)

// BasePath is the route prefix for news endpoints.
const BasePath = "/api/v1/news"

// Register registers the news routes with the given mux. Every route is
// wrapped with protect, the API-key auth middleware.
//
// The slug route is registered as a subtree match; static report routes
// registered elsewhere under the same prefix are more specific and win.
func Register(mux *http.ServeMux, svc *newsUC.Service, paginationCfg pagination.Config, logger *slog.Logger, protect func(http.Handler) http.Handler) {
	mux.Handle("GET "+BasePath, protect(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET "+BasePath+"/", protect(GetHandler{
		Svc:    svc,
		Prefix: BasePath + "/",
		Logger: logger,
	}))
}
