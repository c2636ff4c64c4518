package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"punctuation only", "?!... --", []string{}},
		{"lower-cases", "Cat SAT", []string{"cat", "sat"}},
		{"splits on non-word runs", "cat, sat -- on/the mat!", []string{"cat", "sat", "on", "the", "mat"}},
		{"keeps digits and underscores", "step_1 uses 42 items", []string{"step_1", "uses", "42", "items"}},
		{"unicode letters", "Café über naïve", []string{"café", "über", "naïve"}},
		{"apostrophes split", "don't", []string{"don", "t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterStopwords(t *testing.T) {
	in := []string{"the", "cat", "sat", "on", "the", "mat"}
	got := FilterStopwords(in)

	assert.Equal(t, []string{"cat", "sat", "mat"}, got)
	assert.Equal(t, []string{"the", "cat", "sat", "on", "the", "mat"}, in, "input must not be modified")
}

func TestStopwordListSize(t *testing.T) {
	words := Stopwords()
	assert.GreaterOrEqual(t, len(words), 110)
	assert.LessOrEqual(t, len(words), 140)

	words[0] = "mutated"
	assert.True(t, IsStopword("a"), "Stopwords must return a copy")
	assert.False(t, IsStopword("mutated"))
}

func TestFrequencies(t *testing.T) {
	got := Frequencies([]string{"build", "test", "build", "deploy", "build"})
	assert.Equal(t, map[string]int{"build": 3, "test": 1, "deploy": 1}, got)
	assert.Empty(t, Frequencies(nil))
}

func TestSentences(t *testing.T) {
	got := Sentences("First one here. Second one?! Third...  ")
	assert.Equal(t, []string{"First one here", "Second one", "Third"}, got)
	assert.Empty(t, Sentences("  ...  "))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords("   "))
	assert.Equal(t, 4, CountWords("Write a blog\npost."))
}
