// Package quality scores how well-formed an authored prompt is along five
// heuristic dimensions and combines them into one composite score.
//
// Scores are advisory. Nothing here rejects a prompt; callers decide what a
// low score means for them.
package quality

import (
	"math"

	"promptlens/internal/domain"
)

// Metric weights. They sum to 1.
const (
	WeightLength      = 0.15
	WeightSpecificity = 0.25
	WeightClarity     = 0.25
	WeightStructure   = 0.15
	WeightContext     = 0.20
)

type metric struct {
	name    domain.MetricName
	weight  float64
	measure func(string) float64
}

var metrics = []metric{
	{domain.MetricLength, WeightLength, Length},
	{domain.MetricSpecificity, WeightSpecificity, Specificity},
	{domain.MetricClarity, WeightClarity, Clarity},
	{domain.MetricStructure, WeightStructure, Structure},
	{domain.MetricContext, WeightContext, Context},
}

// Weight returns the combiner weight of a metric, or 0 for an unknown name.
func Weight(name domain.MetricName) float64 {
	for _, m := range metrics {
		if m.name == name {
			return m.weight
		}
	}
	return 0
}

// Scorer computes QualityReports. The zero value is ready to use.
type Scorer struct{}

// NewScorer returns a Scorer.
func NewScorer() *Scorer { return &Scorer{} }

// Score runs every metric on prompt and combines them. The caller is
// responsible for rejecting empty prompts beforehand (see domain.ValidatePrompt).
func (s *Scorer) Score(prompt string) domain.QualityReport {
	return Score(prompt)
}

// Score is the package-level form of Scorer.Score.
func Score(prompt string) domain.QualityReport {
	report := domain.QualityReport{Metrics: make(map[domain.MetricName]float64, len(metrics))}
	total := 0.0
	for _, m := range metrics {
		v := m.measure(prompt)
		report.Metrics[m.name] = v
		total += v * m.weight
	}
	report.Score = round2(total)
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
