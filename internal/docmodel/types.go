// Package docmodel defines the data model shared by the builder and the
// search engine: annotated words, stemming algorithms, documents, and the
// excerpt/result records a Container stores per posting.
package docmodel

// SourceTag identifies which word list of a document an Excerpt came from.
// The builder always processes Title before Contents (spec §4.3); the
// ordering here exists so callers can sort/compare deterministically.
type SourceTag uint8

const (
	SourceTitle SourceTag = iota
	SourceContents
)

func (s SourceTag) String() string {
	if s == SourceTitle {
		return "title"
	}
	return "contents"
}

// StemAlgorithm is the closed set of Snowball-compatible stemmers a document
// may be tagged with. StemNone means the document opts out of reverse-stem
// aliasing entirely.
type StemAlgorithm uint8

const (
	StemNone StemAlgorithm = iota
	StemEnglish
	StemSpanish
	StemFrench
	StemGerman
	StemRussian
)

func (a StemAlgorithm) String() string {
	switch a {
	case StemEnglish:
		return "english"
	case StemSpanish:
		return "spanish"
	case StemFrench:
		return "french"
	case StemGerman:
		return "german"
	case StemRussian:
		return "russian"
	default:
		return "none"
	}
}

// ParseStemAlgorithm parses one of the supported stemmer names, or "none"/""
// for no stemming. It reports false for anything outside the closed set.
func ParseStemAlgorithm(s string) (StemAlgorithm, bool) {
	switch s {
	case "english":
		return StemEnglish, true
	case "spanish":
		return StemSpanish, true
	case "french":
		return StemFrench, true
	case "german":
		return StemGerman, true
	case "", "none":
		return StemNone, true
	case "russian":
		return StemRussian, true
	default:
		return StemNone, false
	}
}

// AnnotatedWord is a single token produced by the tokenizer: a surface
// form (after NFKC normalization), the byte offset and byte length of the
// span it was read from in the source text (before normalization — NFKC
// can change a span's byte length, so RawLength is what callers need to
// slice the original text), and whatever the originating parser or
// containing section attached to it.
type AnnotatedWord struct {
	Word                string
	ByteOffset          int
	RawLength           int
	InternalAnnotations []string
	Fields              map[string]string
}

// WordSpan locates a single word's surface form within a document's stored
// body text, so the search engine can recover the original text of a match
// (for excerpt rendering) without re-tokenizing the whole body.
type WordSpan struct {
	Offset uint32
	Length uint16
}

// InputDocument is what a caller hands to the builder: the raw document
// fields plus an optional stemming algorithm. It is never mutated.
type InputDocument struct {
	Title         string
	URL           string
	Fields        map[string]string
	Body          string
	StemAlgorithm StemAlgorithm
}

// NormalizedEntry is an InputDocument after tokenization: its body has been
// split into AnnotatedWords, ready for the container-filling pass. Title is
// tokenized lazily by the builder (titles are short; re-tokenizing at fill
// time and at render time is cheaper than persisting a second word list).
type NormalizedEntry struct {
	Title         string
	URL           string
	Fields        map[string]string
	ContentWords  []AnnotatedWord
	StemAlgorithm StemAlgorithm
}

// Document is the record stored in a ParsedIndex: everything needed to
// render an excerpt for a hit against this document, without re-running the
// tokenizer over its body at query time.
type Document struct {
	Title        string
	URL          string
	Fields       map[string]string
	Body         string
	ContentWords []WordSpan
}
