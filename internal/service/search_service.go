package service

import (
	"sort"

	"promptlens/internal/domain"
	"promptlens/internal/keywords"
	"promptlens/internal/similarity"
)

// SearchOptions tunes the two search response modes.
type SearchOptions struct {
	// Threshold is the exclusive score floor of ModeThreshold.
	Threshold float64
	// MaxResults caps the result list of ModeRanked.
	MaxResults int
	// TopicSources is how many top-ranked documents feed topic extraction.
	TopicSources int
	// KeywordsPerResult is the keyword count attached to each ranked result.
	KeywordsPerResult int
}

// DefaultSearchOptions returns the standard configuration.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Threshold:         0.3,
		MaxResults:        10,
		TopicSources:      5,
		KeywordsPerResult: keywords.DefaultTopN,
	}
}

func (o SearchOptions) withDefaults() SearchOptions {
	d := DefaultSearchOptions()
	if o.MaxResults <= 0 {
		o.MaxResults = d.MaxResults
	}
	if o.TopicSources <= 0 {
		o.TopicSources = d.TopicSources
	}
	if o.KeywordsPerResult <= 0 {
		o.KeywordsPerResult = d.KeywordsPerResult
	}
	if o.Threshold < 0 {
		o.Threshold = 0
	}
	return o
}

// SearchService ranks a caller-supplied corpus by lexical similarity to a
// query. It keeps no state between calls and never modifies the corpus.
type SearchService struct {
	opts SearchOptions
}

// NewSearchService creates a search service. Non-positive limits fall back
// to DefaultSearchOptions.
func NewSearchService(opts SearchOptions) *SearchService {
	return &SearchService{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (s *SearchService) Options() SearchOptions { return s.opts }

// Search runs the requested mode. An unknown mode is treated as ModeRanked.
func (s *SearchService) Search(query string, corpus []domain.Document, mode domain.SearchMode) domain.SearchResponse {
	if mode == domain.ModeThreshold {
		res := s.Threshold(query, corpus)
		return domain.SearchResponse{
			Mode:          domain.ModeThreshold,
			RankedResults: domain.RankedResults{Results: res, Total: len(res)},
		}
	}
	return domain.SearchResponse{Mode: domain.ModeRanked, RankedResults: s.Ranked(query, corpus)}
}

// Threshold returns the documents scoring strictly above the threshold,
// highest first. Equal scores keep corpus order.
func (s *SearchService) Threshold(query string, corpus []domain.Document) []domain.SearchResult {
	return s.score(query, corpus, s.opts.Threshold)
}

// Ranked returns the best MaxResults overlapping documents with their
// keywords, topics drawn from the best TopicSources of them, and the number
// of overlapping documents before truncation.
func (s *SearchService) Ranked(query string, corpus []domain.Document) domain.RankedResults {
	matches := s.score(query, corpus, 0)
	total := len(matches)
	if len(matches) > s.opts.MaxResults {
		matches = matches[:s.opts.MaxResults]
	}
	for i := range matches {
		matches[i].Keywords = keywords.Extract(matches[i].Document.Text, s.opts.KeywordsPerResult)
	}

	n := min(s.opts.TopicSources, len(matches))
	texts := make([]string, n)
	for i := 0; i < n; i++ {
		texts[i] = matches[i].Document.Text
	}
	return domain.RankedResults{
		Results: matches,
		Topics:  keywords.Topics(texts),
		Total:   total,
	}
}

// score computes the similarity of every document and keeps those above
// floor, sorted by descending score.
func (s *SearchService) score(query string, corpus []domain.Document, floor float64) []domain.SearchResult {
	out := make([]domain.SearchResult, 0, len(corpus))
	for _, doc := range corpus {
		sc := similarity.Cosine(query, doc.Text)
		if sc <= floor {
			continue
		}
		out = append(out, domain.SearchResult{Document: doc, Score: sc})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
