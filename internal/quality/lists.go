package quality

import "regexp"

// Indicator phrases are matched case-insensitively as substrings of the prompt.
var (
	specificityIndicators = []string{
		"specific", "exactly", "precisely", "particular",
		"detailed", "explicit", "clear", "define",
		"numbers", "measurements", "requirements",
		"example", "such as", "specifically", "following",
		"steps", "process", "method", "approach",
	}

	contextIndicators = []string{
		"because", "since", "as", "therefore",
		"background", "context", "purpose", "goal",
		"need", "requirement", "scenario", "situation",
		"use case", "objective", "target", "audience",
	}

	fillerPhrases = []string{"maybe", "perhaps", "kind of", "sort of", "like", "um", "uh"}
)

var (
	digitRe   = regexp.MustCompile(`\d`)
	exampleRe = regexp.MustCompile(`(?i)example|such as|\blike\b`)
	fillerRes = wordPatterns(fillerPhrases)

	exaggeratedRe  = regexp.MustCompile(`[!?]{2,}|\.{4,}`)
	punctuationRe  = regexp.MustCompile(`[,;:]`)
	numberedListRe = regexp.MustCompile(`\d[.)]\s`)
	sequenceRe     = regexp.MustCompile(`(?i)\b(?:first|second|third|finally|then|next)\b`)

	backgroundLeadRe = regexp.MustCompile(`(?i)^(?:given|assuming|considering)`)
	purposeRe        = regexp.MustCompile(`(?i)(?:goal|aim|purpose|objective|trying to|want to|need to) (?:is|are|to)`)
)

// wordPatterns compiles one case-insensitive, word-bounded pattern per phrase.
func wordPatterns(phrases []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return out
}
