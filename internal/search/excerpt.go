package search

import (
	"unicode"
	"unicode/utf8"

	"github.com/statidx/statidx/internal/container"
	"github.com/statidx/statidx/internal/docmodel"
	"github.com/statidx/statidx/internal/tokenize"
)

// HighlightRange is a byte range within a RenderedExcerpt's Text that
// matched a query term, relative to the start of Text.
type HighlightRange struct {
	Beginning int
	Length    int
}

// RenderedExcerpt is the text window shown to a user around one match,
// plus where within it to highlight.
type RenderedExcerpt struct {
	Text       string
	Highlights []HighlightRange
}

// excerptCandidate is a ScoredExcerpt whose position has been resolved to
// a concrete byte offset and length within one of the document's texts,
// the input to excerpt grouping (spec §5 "Excerpt rendering").
type excerptCandidate struct {
	scored ScoredExcerpt
	body   string
	offset int
	length int
}

// resolveOffset locates excerpt's matched-word byte span within doc — via
// its persisted WordSpan for Contents, or by re-tokenizing the (short)
// Title — returning the text it was found in alongside the span.
func resolveOffset(doc docmodel.Document, excerpt container.Excerpt) (body string, offset, length int, ok bool) {
	switch excerpt.Source {
	case docmodel.SourceContents:
		if excerpt.WordIndex < 0 || excerpt.WordIndex >= len(doc.ContentWords) {
			return "", 0, 0, false
		}
		span := doc.ContentWords[excerpt.WordIndex]
		offset, length = int(span.Offset), int(span.Length)
		if offset+length > len(doc.Body) {
			return "", 0, 0, false
		}
		return doc.Body, offset, length, true
	case docmodel.SourceTitle:
		words := tokenize.Tokenize(doc.Title)
		if excerpt.WordIndex < 0 || excerpt.WordIndex >= len(words) {
			return "", 0, 0, false
		}
		offset, length = words[excerpt.WordIndex].ByteOffset, words[excerpt.WordIndex].RawLength
		if offset+length > len(doc.Title) {
			return "", 0, 0, false
		}
		return doc.Title, offset, length, true
	default:
		return "", 0, 0, false
	}
}

// renderGroup builds a window of roughly excerptLength bytes around
// center's span, expanded outward to whole-word boundaries so a match is
// never rendered mid-word, and highlights every group member (including
// center) whose span falls inside that window.
func renderGroup(center excerptCandidate, members []excerptCandidate, excerptLength int) RenderedExcerpt {
	body := center.body
	half := (excerptLength - center.length) / 2
	if half < 0 {
		half = 0
	}

	start := expandToWordStart(body, clampInt(center.offset-half, 0, len(body)))
	end := expandToWordEnd(body, clampInt(center.offset+center.length+half, 0, len(body)))

	var highlights []HighlightRange
	for _, m := range members {
		if m.offset < start || m.offset+m.length > end {
			continue
		}
		highlights = append(highlights, HighlightRange{Beginning: m.offset - start, Length: m.length})
	}

	return RenderedExcerpt{Text: body[start:end], Highlights: highlights}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// expandToWordStart walks i backward (on rune boundaries) until it sits at
// the start of the string or just past a space, so an excerpt never opens
// mid-word.
func expandToWordStart(body string, i int) int {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(body[:i])
		if r == utf8.RuneError || unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	return i
}

// expandToWordEnd walks i forward until it sits at the end of the string or
// just before a space.
func expandToWordEnd(body string, i int) int {
	for i < len(body) {
		r, size := utf8.DecodeRuneInString(body[i:])
		if r == utf8.RuneError || unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
