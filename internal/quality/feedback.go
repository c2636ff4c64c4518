package quality

import (
	"promptlens/internal/domain"
)

// Band thresholds. LowScoreThreshold is the default below which callers
// treat a prompt as low quality.
const (
	GoodScoreThreshold = 0.7
	LowScoreThreshold  = 0.4
)

// Band is a coarse rating of a score.
type Band string

const (
	BandGood Band = "good"
	BandFair Band = "fair"
	BandPoor Band = "poor"
)

// BandOf classifies a metric value or composite score.
func BandOf(score float64) Band {
	switch {
	case score >= GoodScoreThreshold:
		return BandGood
	case score >= LowScoreThreshold:
		return BandFair
	default:
		return BandPoor
	}
}

var metricHints = map[domain.MetricName]string{
	domain.MetricLength:      "Aim for roughly 10 to 50 words.",
	domain.MetricSpecificity: "Try adding more specific details about what you want to achieve.",
	domain.MetricClarity:     "Make your instructions clearer and more direct.",
	domain.MetricStructure:   "Break down your prompt into clear, logical steps.",
	domain.MetricContext:     "Add relevant background information or context for better meaning to your prompt.",
}

var generalSuggestions = []string{
	"Be more specific about your requirements",
	"Use clear and concise language",
	"Include relevant context or background",
	"Structure your prompt with a clear goal",
	"Consider adding examples or constraints",
}

// Suggestions returns improvement hints for each poor metric, in reporting
// order, followed by general advice when the composite score is poor.
func Suggestions(report domain.QualityReport) []string {
	var out []string
	for _, name := range domain.MetricNames {
		if v, ok := report.Metrics[name]; ok && BandOf(v) == BandPoor {
			out = append(out, metricHints[name])
		}
	}
	if BandOf(report.Score) == BandPoor {
		out = append(out, generalSuggestions...)
	}
	return out
}
