// Package keywords ranks the most frequent non-stopword terms of a text and
// aggregates topics across several texts.
package keywords

import (
	"sort"
	"strings"

	"promptlens/internal/text"
)

// DefaultTopN is the number of keywords returned when no positive limit is given.
const DefaultTopN = 5

type termCount struct {
	term  string
	count int
}

// Extract returns up to topN terms of s ordered by descending frequency.
// Stopwords are excluded. Terms with equal counts are ordered
// lexicographically so the output is reproducible.
func Extract(s string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}
	freq := text.Frequencies(text.FilterStopwords(text.Tokenize(s)))
	ranked := make([]termCount, 0, len(freq))
	for term, n := range freq {
		ranked = append(ranked, termCount{term, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].term < ranked[j].term
	})
	if topN > len(ranked) {
		topN = len(ranked)
	}
	out := make([]string, topN)
	for i := 0; i < topN; i++ {
		out[i] = ranked[i].term
	}
	return out
}

// topicSeparator joins texts before extraction so the last word of one text
// never fuses with the first word of the next.
const topicSeparator = " "

// Topics extracts the DefaultTopN keywords of the concatenation of texts.
func Topics(texts []string) []string {
	return Extract(strings.Join(texts, topicSeparator), DefaultTopN)
}
