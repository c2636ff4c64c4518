package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptlens/internal/domain"
	"promptlens/internal/quality"
	"promptlens/internal/text"
)

// debounceDelay is how long typing must pause before a prompt is re-scored.
const debounceDelay = 300 * time.Millisecond

// PromptPort is the TUI-facing subset of the prompt service.
type PromptPort interface {
	ScoreQuality(prompt string) (domain.QualityReport, error)
	Search(ctx context.Context, query string, mode domain.SearchMode) (domain.SearchResponse, error)
}

type mode int

const (
	modeQuality mode = iota
	modeSearch
)

func (m mode) String() string {
	if m == modeSearch {
		return "search"
	}
	return "quality"
}

// scoreMsg asks for a re-score if no keystroke arrived since it was scheduled.
type scoreMsg struct{ seq int }

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service   PromptPort
	mode      mode
	input     textinput.Model
	viewport  viewport.Model
	report    *domain.QualityReport
	results   []domain.SearchResult
	topics    []string
	total     int
	status    string
	cursor    int
	ready     bool
	lastQuery string
	seq       int
}

// New creates a new TUI model instance.
func New(service PromptPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Write a prompt to score it (Tab switches to search)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, status: "Type to score. Tab toggles search."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + topics
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.refresh()
		return m, nil
	case scoreMsg:
		if msg.seq == m.seq && m.mode == modeQuality {
			m.scoreInput()
			m.refresh()
		}
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			m.toggleMode()
			m.refresh()
			return m, nil
		case "enter":
			if m.mode == modeSearch {
				m.runSearch()
				m.refresh()
				return m, nil
			}
		case "down":
			if m.mode == modeSearch && len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.refresh()
				return m, nil
			}
		case "up":
			if m.mode == modeSearch && len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.refresh()
				return m, nil
			}
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeQuality && m.input.Value() != before {
		m.seq++
		seq := m.seq
		cmd = tea.Batch(cmd, tea.Tick(debounceDelay, func(time.Time) tea.Msg { return scoreMsg{seq: seq} }))
	}
	return m, cmd
}

func (m *Model) toggleMode() {
	if m.mode == modeQuality {
		m.mode = modeSearch
		m.input.Placeholder = "Type a query and press Enter"
		m.status = "Search mode. Enter runs the query."
		return
	}
	m.mode = modeQuality
	m.input.Placeholder = "Write a prompt to score it (Tab switches to search)"
	m.status = "Quality mode. Type to score."
	m.scoreInput()
}

func (m *Model) scoreInput() {
	report, err := m.service.ScoreQuality(m.input.Value())
	if err != nil {
		m.report = nil
		return
	}
	m.report = &report
	m.status = fmt.Sprintf("Quality score %d%% (%s)", percent(report.Score), quality.BandOf(report.Score))
}

func (m *Model) runSearch() {
	q := strings.TrimSpace(m.input.Value())
	if q == "" {
		return
	}
	resp, err := m.service.Search(context.Background(), q, domain.ModeRanked)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.results = nil
		m.topics = nil
		return
	}
	m.status = fmt.Sprintf("%d matches for %q", resp.Total, q)
	m.results = resp.Results
	m.topics = resp.Topics
	m.total = resp.Total
	m.cursor = 0
	m.lastQuery = q
}

func (m *Model) refresh() {
	if m.mode == modeSearch {
		m.viewport.SetContent(m.renderCurrentResult())
		return
	}
	m.viewport.SetContent(m.renderReport())
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("promptlens · " + m.mode.String())
	sub := ""
	if m.mode == modeSearch && len(m.topics) > 0 {
		sub = "topics: #" + strings.Join(m.topics, " #")
	}
	subline := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(sub)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + subline + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderReport() string {
	if m.report == nil {
		return "Start typing a prompt."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Quality Score: %s\n\n", bandStyle(m.report.Score).Render(fmt.Sprintf("%d%%", percent(m.report.Score))))
	for _, name := range domain.MetricNames {
		v := m.report.Metrics[name]
		fmt.Fprintf(&b, "  %-12s %s\n", name, bandStyle(v).Render(fmt.Sprintf("%3d%%", percent(v))))
	}
	if hints := quality.Suggestions(*m.report); len(hints) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, h := range hints {
			b.WriteString("  - " + h + "\n")
		}
	}
	return b.String()
}

func (m Model) renderCurrentResult() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	r := m.results[m.cursor]
	title := fmt.Sprintf("Result %d/%d  relevance=%s", m.cursor+1, len(m.results), bandStyle(r.Score).Render(fmt.Sprintf("%d%%", percent(r.Score))))
	if r.Document.Tag != "" {
		title += "  #" + r.Document.Tag
	}
	body := highlightBestSentence(r.Document.Text, m.lastQuery)
	kw := ""
	if len(r.Keywords) > 0 {
		kw = "\n\n" + keywordStyle.Render("#"+strings.Join(r.Keywords, " #"))
	}
	return title + "\n\n" + body + kw
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	keywordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	goodStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fairStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	poorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func bandStyle(score float64) lipgloss.Style {
	switch quality.BandOf(score) {
	case quality.BandGood:
		return goodStyle
	case quality.BandFair:
		return fairStyle
	default:
		return poorStyle
	}
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}

// highlightBestSentence emphasises the sentence sharing the most distinct
// tokens with the query.
func highlightBestSentence(body, query string) string {
	if strings.TrimSpace(body) == "" {
		return body
	}
	sentences := text.Sentences(body)
	if len(sentences) == 0 {
		return strings.TrimSpace(body)
	}
	qTokens := tokenSet(query)
	if len(qTokens) == 0 {
		return strings.Join(sentences, ". ")
	}
	scores := make([]int, len(sentences))
	for i, s := range sentences {
		scores[i] = overlap(qTokens, s)
	}
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
	best := order[0]
	out := make([]string, len(sentences))
	for i, s := range sentences {
		if i == best && scores[i] > 0 {
			out[i] = highlightStyle.Render(s)
		} else {
			out[i] = s
		}
	}
	return strings.Join(out, ". ")
}

func tokenSet(s string) map[string]struct{} {
	tokens := text.Tokenize(s)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

func overlap(queryTokens map[string]struct{}, sentence string) int {
	score := 0
	for t := range tokenSet(sentence) {
		if _, ok := queryTokens[t]; ok {
			score++
		}
	}
	return score
}
