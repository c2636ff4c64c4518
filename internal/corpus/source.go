// Package corpus adapts document stores into domain.CorpusSource values.
// Every Load reads the backing store again; nothing is cached between calls.
package corpus

import (
	"context"
	"fmt"

	"promptlens/internal/domain"
)

// Config selects and configures a corpus source.
type Config struct {
	Type string
	Path string
}

// New builds the configured source. Supported types are "file" (JSON or
// YAML) and "sqlite".
func New(cfg Config) (domain.CorpusSource, error) {
	switch cfg.Type {
	case "file", "":
		return NewFileSource(cfg.Path), nil
	case "sqlite":
		return NewSQLiteSource(cfg.Path), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, cfg.Type)
	}
}

// MemorySource serves a fixed set of documents.
type MemorySource struct {
	docs []domain.Document
}

// NewMemorySource copies docs into a new source.
func NewMemorySource(docs []domain.Document) *MemorySource {
	return &MemorySource{docs: append([]domain.Document(nil), docs...)}
}

// Load returns a copy of the documents so callers cannot alter the source.
func (s *MemorySource) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Document(nil), s.docs...), nil
}
