package api

import "net/http"

// RegisterRoutes mounts the handler's endpoints on mux.
func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("POST /api/prompt/quality-score", handler.HandleQualityScore)
	mux.HandleFunc("GET /api/prompt/semantic-search", handler.HandleSemanticSearch)
}
