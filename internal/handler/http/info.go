package http

import (
	"net/http"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/respond"
)

// APIInfo describes the service for the root endpoint.
type APIInfo struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Documentation string            `json:"documentation"`
	Endpoints     map[string]string `json:"endpoints"`
}

// InfoHandler serves the root API info endpoint.
type InfoHandler struct {
	Name    string
	Version string
}

// ServeHTTP returns service metadata and a map of the available endpoints.
// Requests for any other unregistered path get a 404 error envelope instead
// of the default plain-text not-found page.
func (h *InfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respond.Error(w, r, http.StatusNotFound, respond.CodeNotFound, "resource not found")
		return
	}

	start := time.Now()
	info := APIInfo{
		Name:          h.Name,
		Version:       h.Version,
		Documentation: "/swagger/index.html",
		Endpoints: map[string]string{
			"news":               "/api/v1/news",
			"news_detail":        "/api/v1/news/{slug}",
			"stats":              "/api/v1/news/stats",
			"top_assets":         "/api/v1/news/assets",
			"timeline":           "/api/v1/news/timeline",
			"source_performance": "/api/v1/news/source-performance",
			"health":             "/health",
			"metrics":            "/metrics",
		},
	}
	respond.Success(w, http.StatusOK, info, nil, start)
}
