// Package text holds the lexical building blocks shared by search and
// quality scoring: tokenization, stopword filtering and term frequencies.
package text

import (
	"regexp"
	"strings"
	"unicode"
)

// Tokenize lower-cases text and splits it on runs of characters that are not
// letters, digits or underscores. Empty tokens are never produced.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), isSeparator)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

// Words splits text on whitespace without any normalisation.
func Words(text string) []string {
	return strings.Fields(text)
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// Sentences splits text on sentence-terminating punctuation and returns the
// trimmed, non-empty pieces in order.
func Sentences(text string) []string {
	parts := sentenceSplitter.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
