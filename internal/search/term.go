package search

import "github.com/statidx/statidx/internal/tokenize"

// Term is a single normalized query word, ready to look up as a Container
// Store key.
type Term string

// ParseQuery tokenizes and normalizes a raw query string into the ordered
// list of terms it expands to. Words that normalize away entirely (pure
// punctuation, over the length cap) are dropped rather than rejected, so a
// query like `"what's up?"` still searches for `up`.
func ParseQuery(query string) []Term {
	words := tokenize.Tokenize(query)
	terms := make([]Term, 0, len(words))
	for _, w := range words {
		normalized, ok := tokenize.Normalize(w.Word)
		if !ok {
			continue
		}
		terms = append(terms, Term(normalized))
	}
	return terms
}
