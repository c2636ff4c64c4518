package text

// stopwordList is the fixed set of English function words excluded from
// keyword and topic extraction.
var stopwordList = []string{
	// articles, determiners
	"a", "an", "the", "this", "that", "these", "those", "each", "every", "some", "any", "all",
	"both", "either", "neither", "no", "such", "other", "own", "same",
	// pronouns
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "what", "which", "who", "whom", "whose",
	// prepositions
	"about", "above", "after", "against", "at", "before", "below", "between", "by", "down",
	"during", "for", "from", "in", "into", "of", "off", "on", "onto", "out", "over",
	"through", "to", "under", "until", "up", "upon", "with", "within", "without",
	// auxiliaries, modals
	"am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "can", "could", "will", "would", "shall", "should",
	"may", "might", "must",
	// conjunctions, adverbs
	"and", "but", "or", "nor", "if", "then", "else", "than", "so", "because", "as",
	"while", "when", "where", "why", "how", "here", "there", "again", "further", "once",
	"too", "very", "just", "only", "also", "not", "now",
}

var stopwords = func() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		m[w] = struct{}{}
	}
	return m
}()

// IsStopword reports whether token is in the stopword set. The token is
// expected to be lower-cased already.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// Stopwords returns a copy of the stopword list.
func Stopwords() []string {
	out := make([]string, len(stopwordList))
	copy(out, stopwordList)
	return out
}

// FilterStopwords returns the tokens that are not stopwords, preserving order.
// The input slice is not modified.
func FilterStopwords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if IsStopword(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
