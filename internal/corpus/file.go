package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"promptlens/internal/domain"
)

// FileSource reads a list of prompts from a JSON or YAML file:
//
//	- id: p1
//	  prompt: Write a haiku about autumn.
//	  tag: poetry
//	  creator: ana
//
// JSON arrays of the same objects parse too, since YAML is a superset of JSON.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the file. Entries without an id get a random UUID.
func (s *FileSource) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return nil, errors.New("corpus file path not set")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return ParseDocuments(data)
}

// ParseDocuments decodes a JSON or YAML list of prompts.
func ParseDocuments(data []byte) ([]domain.Document, error) {
	var docs []domain.Document
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = uuid.NewString()
		}
	}
	return docs, nil
}
