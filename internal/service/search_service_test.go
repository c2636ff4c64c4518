package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptlens/internal/domain"
	"promptlens/internal/similarity"
)

func docs(texts ...string) []domain.Document {
	out := make([]domain.Document, len(texts))
	for i, t := range texts {
		out[i] = domain.Document{ID: fmt.Sprintf("d%d", i+1), Text: t}
	}
	return out
}

func TestThreshold_CatExample(t *testing.T) {
	corpus := docs("cat sat on the mat", "dog ran in the park")
	svc := NewSearchService(DefaultSearchOptions())

	got := svc.Threshold("cat sat mat", corpus)

	require.Len(t, got, 1)
	assert.Equal(t, "d1", got[0].Document.ID)
	assert.Equal(t, similarity.Cosine("cat sat mat", corpus[0].Text), got[0].Score)
	assert.Empty(t, got[0].Keywords)
}

func TestThreshold_FloorIsExclusiveAndSorted(t *testing.T) {
	corpus := docs(
		"alpha beta gamma delta",
		"alpha",
		"zeta eta theta",
		"alpha beta",
		"alpha beta gamma delta epsilon zeta eta theta iota kappa",
	)
	svc := NewSearchService(DefaultSearchOptions())

	got := svc.Threshold("alpha beta", corpus)

	require.NotEmpty(t, got)
	for i, r := range got {
		assert.Greater(t, r.Score, 0.3)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Score, r.Score)
		}
	}
	assert.Equal(t, "d4", got[0].Document.ID)
}

func TestThreshold_StableForEqualScores(t *testing.T) {
	corpus := docs("red fox", "blue whale", "red fox", "red fox")
	got := NewSearchService(DefaultSearchOptions()).Threshold("red fox", corpus)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"d1", "d3", "d4"}, []string{got[0].Document.ID, got[1].Document.ID, got[2].Document.ID})
}

func TestRanked_TruncatesAndCounts(t *testing.T) {
	var texts []string
	for i := 0; i < 14; i++ {
		texts = append(texts, fmt.Sprintf("golang tips number%d", i))
	}
	texts = append(texts, "unrelated words entirely")
	corpus := docs(texts...)

	got := NewSearchService(DefaultSearchOptions()).Ranked("golang tips", corpus)

	assert.Equal(t, 14, got.Total)
	require.Len(t, got.Results, 10)
	for i, r := range got.Results {
		assert.Greater(t, r.Score, 0.0)
		assert.LessOrEqual(t, len(r.Keywords), 5)
		assert.NotEmpty(t, r.Keywords)
		if i > 0 {
			assert.GreaterOrEqual(t, got.Results[i-1].Score, r.Score)
		}
	}
	assert.LessOrEqual(t, len(got.Topics), 5)
	assert.Equal(t, []string{"golang", "tips"}, got.Topics[:2])
}

func TestRanked_TopicsFromTopFiveOnly(t *testing.T) {
	corpus := docs(
		"rust rust rust rust rust rust rust rust rust rust rust rust",
		"go go go",
		"go go go",
		"go go go",
		"go go go",
		"go go go",
		"go go go python",
	)
	svc := NewSearchService(DefaultSearchOptions())

	got := svc.Ranked("go", corpus)

	assert.Equal(t, 6, got.Total)
	assert.Equal(t, []string{"go"}, got.Topics, "the sixth match and the non-matching doc must not contribute")
}

func TestRanked_NoOverlap(t *testing.T) {
	got := NewSearchService(DefaultSearchOptions()).Ranked("quantum", docs("cat", "dog"))

	assert.Zero(t, got.Total)
	assert.Empty(t, got.Results)
	assert.Empty(t, got.Topics)
}

func TestSearch_DoesNotMutateCorpus(t *testing.T) {
	corpus := docs("b b", "a b", "b")
	before := append([]domain.Document(nil), corpus...)
	svc := NewSearchService(DefaultSearchOptions())

	svc.Search("b", corpus, domain.ModeRanked)
	svc.Search("b", corpus, domain.ModeThreshold)

	assert.Equal(t, before, corpus)
}

func TestSearch_Modes(t *testing.T) {
	corpus := docs("cat sat on the mat", "dog ran in the park", "the end")
	svc := NewSearchService(DefaultSearchOptions())

	th := svc.Search("cat sat mat", corpus, domain.ModeThreshold)
	assert.Equal(t, domain.ModeThreshold, th.Mode)
	assert.Len(t, th.Results, 1)
	assert.Equal(t, 1, th.Total)
	assert.Nil(t, th.Topics)

	rk := svc.Search("the cat", corpus, domain.ModeRanked)
	assert.Equal(t, domain.ModeRanked, rk.Mode)
	assert.Equal(t, 3, rk.Total)
	assert.Equal(t, "d1", rk.Results[0].Document.ID)
}

func TestNewSearchService_Defaults(t *testing.T) {
	got := NewSearchService(SearchOptions{Threshold: 0.5}).Options()

	assert.Equal(t, 0.5, got.Threshold)
	assert.Equal(t, 10, got.MaxResults)
	assert.Equal(t, 5, got.TopicSources)
	assert.Equal(t, 5, got.KeywordsPerResult)
}
