// Package tokenize implements the Tokenizer and Normalizer components of
// the index (spec §4.1-4.2): Unicode word segmentation down to annotated
// words, NFKC normalization of each span, and CJK-ideograph-aware
// splitting so every ideograph becomes its own token.
package tokenize

import (
	"unicode"

	"github.com/blevesearch/segment"
	"golang.org/x/text/unicode/norm"

	"github.com/statidx/statidx/internal/docmodel"
)

// Tokenize splits text into AnnotatedWords in text order, each carrying the
// UTF-8 byte offset of its first codepoint in text. It uses UAX #29 word
// segmentation (github.com/blevesearch/segment, the same segmenter bleve's
// own unicode tokenizer is built on) rather than a hand-rolled scanner.
//
// Spans with no alphanumeric codepoint (pure whitespace or punctuation
// runs) are dropped. A span made entirely of CJK ideographs is emitted as
// one token per ideograph, each with its own byte offset, per spec §4.1.
func Tokenize(text string) []docmodel.AnnotatedWord {
	if text == "" {
		return nil
	}

	var words []docmodel.AnnotatedWord
	input := []byte(text)
	seg := segment.NewWordSegmenterDirect(input)
	start := 0

	for seg.Segment() {
		raw := seg.Bytes()
		end := start + len(raw)

		if seg.Type() != segment.None {
			span := string(raw)
			if hasAlphanumeric(span) {
				if IsCJKIdeographic(span) {
					words = append(words, splitIdeographs(span, start)...)
				} else {
					words = append(words, docmodel.AnnotatedWord{
						Word:       norm.NFKC.String(span),
						ByteOffset: start,
						RawLength:  len(span),
					})
				}
			}
		}

		start = end
	}

	return words
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// splitIdeographs emits one AnnotatedWord per codepoint in s, each carrying
// its own byte offset relative to the original text.
func splitIdeographs(s string, byteStart int) []docmodel.AnnotatedWord {
	words := make([]docmodel.AnnotatedWord, 0, len(s))
	offset := byteStart
	for _, r := range s {
		rs := string(r)
		words = append(words, docmodel.AnnotatedWord{
			Word:       norm.NFKC.String(rs),
			ByteOffset: offset,
			RawLength:  len(rs),
		})
		offset += len(rs)
	}
	return words
}
