package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptlens/internal/corpus"
	"promptlens/internal/domain"
	"promptlens/internal/logger"
	"promptlens/internal/quality"
	"promptlens/internal/service"
)

func newModel() Model {
	src := corpus.NewMemorySource([]domain.Document{
		{ID: "1", Text: "The cat sat on the mat. It was warm.", Tag: "animals"},
		{ID: "2", Text: "A cat and a dog run in the park."},
	})
	svc := service.NewPromptService(src, service.NewSearchService(service.DefaultSearchOptions()), quality.NewScorer(), logger.Discard())
	m := New(svc)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model)
}

func typeText(m Model, s string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range s {
		var next tea.Model
		next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m, cmd
}

func TestQualityMode_DebouncedScore(t *testing.T) {
	m := newModel()
	m, cmd := typeText(m, "Write a blog post.")
	require.NotNil(t, cmd)
	assert.Nil(t, m.report, "scoring waits for the debounce tick")

	stale, _ := m.Update(scoreMsg{seq: m.seq - 1})
	assert.Nil(t, stale.(Model).report, "stale ticks are ignored")

	next, _ := m.Update(scoreMsg{seq: m.seq})
	m = next.(Model)
	require.NotNil(t, m.report)
	assert.Equal(t, quality.Score("Write a blog post.").Score, m.report.Score)
	assert.Contains(t, m.renderReport(), "Suggestions")
	assert.Contains(t, m.View(), "quality")
}

func TestSearchMode_EnterRunsRankedSearch(t *testing.T) {
	m := newModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, modeSearch, m.mode)

	m, _ = typeText(m, "cat mat")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	require.Len(t, m.results, 2)
	assert.Equal(t, "1", m.results[0].Document.ID)
	assert.Contains(t, m.topics, "cat")
	assert.Contains(t, m.status, "2 matches")
	assert.Contains(t, m.View(), "topics:")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, next.(Model).cursor)
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, next.(Model).cursor)
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, next.(Model).cursor)
}

func TestHighlightBestSentence(t *testing.T) {
	out := highlightBestSentence("Dogs bark. The cat sat on the mat. Birds sing.", "cat mat")
	parts := strings.Split(out, ". ")
	require.Len(t, parts, 3)
	assert.Equal(t, "Dogs bark", parts[0])
	assert.Contains(t, parts[1], "The cat sat on the mat")
	assert.Equal(t, "Birds sing", parts[2])

	assert.Equal(t, "", highlightBestSentence("", "cat"))
	assert.Equal(t, "One. Two", highlightBestSentence("One. Two.", ""))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 39, percent(0.39))
	assert.Equal(t, 100, percent(1))
	assert.Equal(t, 0, percent(0))
}
