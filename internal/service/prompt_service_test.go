package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptlens/internal/corpus"
	"promptlens/internal/domain"
	"promptlens/internal/logger"
	"promptlens/internal/quality"
)

type failingSource struct{ err error }

func (f failingSource) Load(context.Context) ([]domain.Document, error) { return nil, f.err }

func newTestService(src domain.CorpusSource) *PromptService {
	return NewPromptService(src, NewSearchService(DefaultSearchOptions()), quality.NewScorer(), logger.Discard())
}

func TestPromptService_ScoreQuality(t *testing.T) {
	svc := newTestService(nil)

	r, err := svc.ScoreQuality("Write a blog post.")
	require.NoError(t, err)
	assert.Equal(t, quality.Score("Write a blog post."), r)

	_, err = svc.ScoreQuality("   ")
	assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
}

func TestPromptService_Search(t *testing.T) {
	src := corpus.NewMemorySource(docs("cat sat on the mat", "dog ran in the park"))
	svc := newTestService(src)

	resp, err := svc.Search(context.Background(), "cat sat mat", domain.ModeThreshold)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "d1", resp.Results[0].Document.ID)

	_, err = svc.Search(context.Background(), "", domain.ModeRanked)
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestPromptService_SearchSourceError(t *testing.T) {
	boom := errors.New("store down")
	svc := newTestService(failingSource{err: boom})

	_, err := svc.Search(context.Background(), "cat", domain.ModeRanked)
	assert.ErrorIs(t, err, boom)

	_, err = newTestService(nil).Search(context.Background(), "cat", domain.ModeRanked)
	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
}

func TestPromptService_Audit(t *testing.T) {
	good := "Background: I am building a REST API in Go for a small project.\nMy goal is to add rate limiting. Please give me specific steps, for example using a token bucket, and include at least 2 code samples."
	src := corpus.NewMemorySource([]domain.Document{
		{ID: "short", Text: "Write a blog post."},
		{ID: "good", Text: good},
		{ID: "blank", Text: "  "},
		{ID: "tiny", Text: "x"},
	})
	svc := newTestService(src)

	got, err := svc.Audit(context.Background(), quality.LowScoreThreshold)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.LessOrEqual(t, got[0].Report.Score, got[1].Report.Score)
	ids := []string{got[0].Document.ID, got[1].Document.ID}
	assert.ElementsMatch(t, []string{"short", "tiny"}, ids)
}
