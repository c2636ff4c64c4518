package domain

import "context"

// Document is a single stored prompt supplied by the document store.
// The analysis code only reads Text; the remaining fields travel with results.
type Document struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"prompt" yaml:"prompt"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Creator string `json:"creator,omitempty" yaml:"creator,omitempty"`
}

// SearchResult is a document annotated with its similarity to a query.
type SearchResult struct {
	Document Document `json:"document"`
	Score    float64  `json:"similarity"`
	Keywords []string `json:"keywords,omitempty"`
}

// RankedResults is the ranked-with-topics view of a search.
type RankedResults struct {
	Results []SearchResult `json:"results"`
	Topics  []string       `json:"topics"`
	Total   int            `json:"total"`
}

// SearchMode selects how a search response is shaped.
type SearchMode string

const (
	// ModeThreshold keeps documents scoring above a fixed floor.
	ModeThreshold SearchMode = "threshold"
	// ModeRanked keeps every overlapping document, truncates, and adds keywords and topics.
	ModeRanked SearchMode = "ranked"
)

// ParseSearchMode maps a user-supplied mode name onto a SearchMode.
// An empty name selects ModeRanked.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(s) {
	case ModeRanked, "":
		return ModeRanked, nil
	case ModeThreshold:
		return ModeThreshold, nil
	default:
		return "", ErrUnknownMode
	}
}

// SearchResponse carries the output of either search mode. For ModeThreshold
// only Results is populated and Total equals len(Results).
type SearchResponse struct {
	Mode SearchMode `json:"mode"`
	RankedResults
}

// MetricName identifies one of the five prompt quality dimensions.
type MetricName string

const (
	MetricLength      MetricName = "length"
	MetricSpecificity MetricName = "specificity"
	MetricClarity     MetricName = "clarity"
	MetricStructure   MetricName = "structure"
	MetricContext     MetricName = "context"
)

// MetricNames lists the quality dimensions in reporting order.
var MetricNames = []MetricName{MetricLength, MetricSpecificity, MetricClarity, MetricStructure, MetricContext}

// QualityReport is the composite prompt quality score with its per-metric breakdown.
type QualityReport struct {
	Score   float64                `json:"score"`
	Metrics map[MetricName]float64 `json:"metrics"`
}

// CorpusSource supplies the documents a search runs over. Implementations
// are expected to read fresh data on every call.
type CorpusSource interface {
	Load(ctx context.Context) ([]Document, error)
}

// QualityScorer scores a single prompt.
type QualityScorer interface {
	Score(text string) QualityReport
}

// Searcher ranks a corpus against a query.
type Searcher interface {
	Search(query string, corpus []Document, mode SearchMode) SearchResponse
}
