// Package similarity scores lexical overlap between texts.
package similarity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"promptlens/internal/text"
)

// Cosine returns the cosine similarity of the raw term-frequency vectors of a
// and b. Stopwords are kept. The result lies in [0,1] and is 0 when either
// text has no tokens.
func Cosine(a, b string) float64 {
	return CosineVectors(text.Frequencies(text.Tokenize(a)), text.Frequencies(text.Tokenize(b)))
}

// CosineVectors computes the cosine similarity of two frequency vectors over
// their union vocabulary.
func CosineVectors(fa, fb map[string]int) float64 {
	if len(fa) == 0 || len(fb) == 0 {
		return 0
	}
	vocab := unionVocabulary(fa, fb)
	va := dense(fa, vocab)
	vb := dense(fb, vocab)

	na := floats.Dot(va, va)
	nb := floats.Dot(vb, vb)
	if na == 0 || nb == 0 {
		return 0
	}
	sim := floats.Dot(va, vb) / math.Sqrt(na*nb)
	if sim > 1 {
		sim = 1
	}
	return sim
}

// unionVocabulary returns the sorted distinct terms of both vectors. Sorting
// keeps the summation order independent of argument order, so the score is
// exactly symmetric.
func unionVocabulary(fa, fb map[string]int) []string {
	terms := make([]string, 0, len(fa)+len(fb))
	for t := range fa {
		terms = append(terms, t)
	}
	for t := range fb {
		if _, ok := fa[t]; !ok {
			terms = append(terms, t)
		}
	}
	sort.Strings(terms)
	return terms
}

func dense(freq map[string]int, vocab []string) []float64 {
	vec := make([]float64, len(vocab))
	for i, t := range vocab {
		vec[i] = float64(freq[t])
	}
	return vec
}
