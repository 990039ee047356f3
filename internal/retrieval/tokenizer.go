package retrieval

import "strings"

// Tokenize normalizes raw text into word tokens: lower-cased, punctuation
// stripped to spaces, split on whitespace. Empty input yields no tokens.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
			return r
		}
		return ' '
	}, lower)
	return strings.Fields(cleaned)
}

// TermFrequency computes length-normalized term frequency for a token
// sequence. An empty sequence yields an empty map.
func TermFrequency(tokens []string) map[string]float64 {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := len(tokens)
	if total < 1 {
		total = 1
	}

	tf := make(map[string]float64, len(counts))
	for term, count := range counts {
		tf[term] = float64(count) / float64(total)
	}
	return tf
}
