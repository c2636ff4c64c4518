package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptlens/internal/domain"
)

var prompts = []string{
	"Write a blog post.",
	"x",
	"?!?!?!",
	"um uh like maybe perhaps sort of kind of",
	"Background: I am building a REST API in Go for a small project.\nMy goal is to add rate limiting. Please give me specific steps, for example using a token bucket, and include at least 2 code samples.",
	"Given the following data, explain exactly how the algorithm works because I need to teach it: 1. sort 2. merge",
	words(120),
}

func TestScore_WeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, name := range domain.MetricNames {
		sum += Weight(name)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Zero(t, Weight("tone"))
}

func TestScore_Ranges(t *testing.T) {
	for _, p := range prompts {
		r := Score(p)
		assert.GreaterOrEqual(t, r.Score, 0.0, p)
		assert.LessOrEqual(t, r.Score, 1.0, p)
		require.Len(t, r.Metrics, 5, p)
		for _, name := range domain.MetricNames {
			v, ok := r.Metrics[name]
			require.True(t, ok, "missing metric %s", name)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestScore_WeightedSumReproducesScore(t *testing.T) {
	for _, p := range prompts {
		r := Score(p)
		sum := 0.0
		for _, name := range domain.MetricNames {
			sum += r.Metrics[name] * Weight(name)
		}
		assert.InDelta(t, r.Score, math.Round(sum*100)/100, 1e-9, p)
	}
}

func TestScore_ShortPromptIsLowQuality(t *testing.T) {
	r := NewScorer().Score("Write a blog post.")

	assert.Equal(t, 0.3, r.Metrics[domain.MetricLength])
	assert.Less(t, r.Score, LowScoreThreshold)
	assert.InDelta(t, 0.385, r.Score, 0.006)
	assert.Equal(t, BandPoor, BandOf(r.Score))
}

func TestScore_WellFormedPrompt(t *testing.T) {
	r := Score(prompts[4])

	for _, name := range domain.MetricNames {
		assert.InDelta(t, 1.0, r.Metrics[name], 1e-9, name)
	}
	assert.Equal(t, 1.0, r.Score)
}

func TestScore_RoundedToTwoDecimals(t *testing.T) {
	for _, p := range prompts {
		s := Score(p).Score
		assert.InDelta(t, s, math.Round(s*100)/100, 1e-12)
	}
}
