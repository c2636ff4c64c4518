package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"promptlens/internal/domain"
)

// PromptService is the entry point used by the CLI, HTTP and TUI adapters.
// It validates caller input, loads a fresh corpus for every search and
// delegates the analysis to SearchService and a QualityScorer.
type PromptService struct {
	source domain.CorpusSource
	search *SearchService
	scorer domain.QualityScorer
	log    *slog.Logger
}

// NewPromptService wires the service. source may be nil when only quality
// scoring is needed.
func NewPromptService(source domain.CorpusSource, search *SearchService, scorer domain.QualityScorer, log *slog.Logger) *PromptService {
	if log == nil {
		log = slog.Default()
	}
	return &PromptService{source: source, search: search, scorer: scorer, log: log}
}

// ScoreQuality validates the prompt and returns its quality report.
func (s *PromptService) ScoreQuality(prompt string) (domain.QualityReport, error) {
	if err := domain.ValidatePrompt(prompt); err != nil {
		return domain.QualityReport{}, err
	}
	report := s.scorer.Score(prompt)
	s.log.Debug("scored prompt", "score", report.Score, "bytes", len(prompt))
	return report, nil
}

// Search loads the corpus and ranks it against query.
func (s *PromptService) Search(ctx context.Context, query string, mode domain.SearchMode) (domain.SearchResponse, error) {
	if err := domain.ValidateQuery(query); err != nil {
		return domain.SearchResponse{}, err
	}
	corpus, err := s.loadCorpus(ctx)
	if err != nil {
		return domain.SearchResponse{}, err
	}
	resp := s.search.Search(query, corpus, mode)
	s.log.Debug("search complete", "mode", resp.Mode, "corpus", len(corpus), "matches", resp.Total)
	return resp, nil
}

// AuditEntry is a stored prompt together with its quality report.
type AuditEntry struct {
	Document domain.Document      `json:"document"`
	Report   domain.QualityReport `json:"report"`
}

// Audit scores every non-empty prompt of the corpus and returns those whose
// score is below threshold, lowest first.
func (s *PromptService) Audit(ctx context.Context, threshold float64) ([]AuditEntry, error) {
	corpus, err := s.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}
	var out []AuditEntry
	skipped := 0
	for _, doc := range corpus {
		if domain.ValidatePrompt(doc.Text) != nil {
			skipped++
			continue
		}
		r := s.scorer.Score(doc.Text)
		if r.Score < threshold {
			out = append(out, AuditEntry{Document: doc, Report: r})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Report.Score < out[j].Report.Score })
	s.log.Info("audit complete", "corpus", len(corpus), "flagged", len(out), "skipped", skipped)
	return out, nil
}

func (s *PromptService) loadCorpus(ctx context.Context) ([]domain.Document, error) {
	if s.source == nil {
		return nil, fmt.Errorf("load corpus: %w", domain.ErrUnsupportedSource)
	}
	corpus, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return corpus, nil
}
