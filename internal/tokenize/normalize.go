package tokenize

import (
	"strings"
	"unicode"
)

// MaxWordLength is the length cap (in bytes) a normalized word may not
// exceed; longer words are dropped rather than indexed, guarding against
// adversarial inputs (spec §5).
const MaxWordLength = 4096

// Normalize lowercases a surface word and strips leading/trailing
// punctuation and symbol codepoints (Unicode categories P* and S*). It
// reports false if the result should be dropped: empty after stripping, or
// longer than MaxWordLength bytes.
//
// Normalize is idempotent: Normalize(Normalize(t)) == Normalize(t), since
// the output already has no surrounding punctuation and lowercasing does
// not introduce any.
func Normalize(word string) (string, bool) {
	trimmed := strings.TrimFunc(word, isPunctOrSymbol)
	if trimmed == "" {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	if len(lower) > MaxWordLength {
		return "", false
	}
	return lower, true
}

func isPunctOrSymbol(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
