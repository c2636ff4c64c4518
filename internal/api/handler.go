// Package api exposes quality scoring and similarity search over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"promptlens/internal/domain"
	"promptlens/internal/quality"
)

// PromptPort is the subset of the prompt service the HTTP layer needs.
type PromptPort interface {
	ScoreQuality(prompt string) (domain.QualityReport, error)
	Search(ctx context.Context, query string, mode domain.SearchMode) (domain.SearchResponse, error)
}

// Handler serves the prompt analysis endpoints.
type Handler struct {
	logger  *slog.Logger
	service PromptPort
	cache   *lru.Cache[string, QualityResponse]
}

// NewHandler creates a handler. Quality responses for identical prompt text
// are memoised in an LRU cache of cacheSize entries; cacheSize <= 0 disables it.
func NewHandler(logger *slog.Logger, service PromptPort, cacheSize int) (*Handler, error) {
	h := &Handler{logger: logger, service: service}
	if cacheSize > 0 {
		cache, err := lru.New[string, QualityResponse](cacheSize)
		if err != nil {
			return nil, err
		}
		h.cache = cache
	}
	return h, nil
}

// HandleQualityScore scores the prompt in the request body.
func (h *Handler) HandleQualityScore(w http.ResponseWriter, r *http.Request) {
	var req QualityRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, err)
		return
	}

	if h.cache != nil {
		if resp, ok := h.cache.Get(req.Prompt); ok {
			h.logger.Debug("quality cache hit")
			JSONResponse(w, http.StatusOK, resp)
			return
		}
	}

	report, err := h.service.ScoreQuality(req.Prompt)
	if err != nil {
		h.logger.Debug("quality request rejected", "error", err)
		HandleError(w, err)
		return
	}
	resp := QualityResponse{
		QualityReport: report,
		Band:          quality.BandOf(report.Score),
		Suggestions:   quality.Suggestions(report),
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	if h.cache != nil {
		h.cache.Add(req.Prompt, resp)
	}
	JSONResponse(w, http.StatusOK, resp)
}

// HandleSemanticSearch ranks stored prompts against the q parameter.
// mode=threshold returns a plain list of matches; the default ranked mode
// adds keywords, topics and the total match count.
func (h *Handler) HandleSemanticSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	mode, err := domain.ParseSearchMode(r.URL.Query().Get("mode"))
	if err != nil {
		HandleError(w, err)
		return
	}

	resp, err := h.service.Search(r.Context(), q, mode)
	if err != nil {
		h.logger.Error("search failed", "query", q, "error", err)
		HandleError(w, err)
		return
	}

	if resp.Mode == domain.ModeThreshold {
		JSONResponse(w, http.StatusOK, toMatches(resp.Results))
		return
	}
	JSONResponse(w, http.StatusOK, RankedResponse{
		Results: toMatches(resp.Results),
		Topics:  resp.Topics,
		Total:   resp.Total,
	})
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
