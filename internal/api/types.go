package api

import (
	"promptlens/internal/domain"
	"promptlens/internal/quality"
)

// QualityRequest is the body of POST /api/prompt/quality-score.
type QualityRequest struct {
	Prompt string `json:"prompt"`
}

// QualityResponse is a quality report with its rating and improvement hints.
type QualityResponse struct {
	domain.QualityReport
	Band        quality.Band `json:"band"`
	Suggestions []string     `json:"suggestions"`
}

// PromptMatch is a stored prompt annotated for the search feed.
type PromptMatch struct {
	domain.Document
	Similarity float64  `json:"similarity"`
	Keywords   []string `json:"keywords,omitempty"`
}

// RankedResponse is the body returned by ranked semantic search.
type RankedResponse struct {
	Results []PromptMatch `json:"results"`
	Topics  []string      `json:"topics"`
	Total   int           `json:"total"`
}

func toMatches(results []domain.SearchResult) []PromptMatch {
	out := make([]PromptMatch, len(results))
	for i, r := range results {
		out[i] = PromptMatch{Document: r.Document, Similarity: r.Score, Keywords: r.Keywords}
	}
	return out
}
