package quality

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"promptlens/internal/text"
)

// Length scores the whitespace word count on a step function that favours
// 10 to 50 words and penalises very short prompts more than long ones.
func Length(prompt string) float64 {
	n := text.CountWords(prompt)
	switch {
	case n < 5:
		return 0.3
	case n < 10:
		return 0.7
	case n <= 50:
		return 1.0
	case n <= 75:
		return 0.8
	default:
		return 0.5
	}
}

// Specificity rewards precise-request phrases, numbers and examples.
func Specificity(prompt string) float64 {
	lower := strings.ToLower(prompt)
	score := math.Min(1, float64(countContained(lower, specificityIndicators))/4)
	if digitRe.MatchString(prompt) {
		score += 0.2
	}
	if exampleRe.MatchString(prompt) {
		score += 0.2
	}
	return clamp01(score)
}

// Clarity penalises each distinct filler phrase used and fragments shorter
// than three words.
func Clarity(prompt string) float64 {
	goodStructure := true
	for _, s := range text.Sentences(prompt) {
		if text.CountWords(s) < 3 {
			goodStructure = false
			break
		}
	}
	fillers := 0
	for _, re := range fillerRes {
		if re.MatchString(prompt) {
			fillers++
		}
	}
	score := math.Max(0, 1-float64(fillers)*0.2)
	if !goodStructure {
		score *= 0.7
	}
	return score
}

// StructureChecks are the independent formatting checks behind Structure.
type StructureChecks struct {
	StartsCapitalized bool
	EndsPunctuated    bool
	CalmPunctuation   bool
	HasSeparators     bool
	MultiLine         bool
}

// Passed returns how many checks hold.
func (c StructureChecks) Passed() int {
	n := 0
	for _, ok := range []bool{c.StartsCapitalized, c.EndsPunctuated, c.CalmPunctuation, c.HasSeparators, c.MultiLine} {
		if ok {
			n++
		}
	}
	return n
}

// CheckStructure runs the formatting checks on prompt.
func CheckStructure(prompt string) StructureChecks {
	trimmed := strings.TrimSpace(prompt)
	first, _ := utf8.DecodeRuneInString(trimmed)
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return StructureChecks{
		StartsCapitalized: trimmed != "" && unicode.IsUpper(first),
		EndsPunctuated:    last == '.' || last == '!' || last == '?',
		CalmPunctuation:   !exaggeratedRe.MatchString(prompt),
		HasSeparators: punctuationRe.MatchString(prompt) ||
			numberedListRe.MatchString(prompt) ||
			sequenceRe.MatchString(prompt),
		MultiLine: strings.Contains(prompt, "\n"),
	}
}

// Structure is the fraction of passed formatting checks.
func Structure(prompt string) float64 {
	return float64(CheckStructure(prompt).Passed()) / 5
}

// Context rewards background information and a stated purpose.
func Context(prompt string) float64 {
	lower := strings.ToLower(prompt)
	score := math.Min(1, float64(countContained(lower, contextIndicators))/3)
	if strings.Contains(lower, "background") || backgroundLeadRe.MatchString(strings.TrimSpace(prompt)) {
		score += 0.3
	}
	if purposeRe.MatchString(prompt) {
		score += 0.3
	}
	return clamp01(score)
}

// countContained counts the phrases that occur in s at least once.
func countContained(s string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(s, p) {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
