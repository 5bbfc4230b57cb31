// Package container implements the Container Store: the central mapping
// from a normalized word (or a proper prefix of one) to a Container holding
// direct posting results and scored aliases to other containers (spec §3,
// §4.3). It also implements the container-filling algorithm that populates
// the store from a tokenized corpus.
package container

import "github.com/statidx/statidx/internal/docmodel"

// Scoring constants fixed by the index format (spec §3 invariant 3).
const (
	// PrefixScore is the starting score for a same-length prefix alias;
	// each additional missing character subtracts one, floored at zero.
	PrefixScore = 127
	// StemScore is the fixed score every reverse-stem alias receives.
	StemScore = 16
	// ExactScore is the score attributed to a direct container hit at
	// query time (not stored — computed by the search engine).
	ExactScore = 128
)

// Excerpt is a single positional occurrence of a matched word within a
// document: its index into that document's word list, which word list
// (Title or Contents) it came from, and whatever annotations/fields the
// tokenizer attached to the original AnnotatedWord.
type Excerpt struct {
	WordIndex           int
	Source              docmodel.SourceTag
	InternalAnnotations []string
	Fields              map[string]string
}

// SearchResult is the per-(document, word) posting: every Excerpt recorded
// for that pair, in the order they were encountered during the build.
type SearchResult struct {
	Excerpts []Excerpt
}

// Container is the posting-list unit keyed by a normalized word or a proper
// prefix of one. Results hold direct hits; Aliases hold scored references
// to other container keys (spec §3 invariant 2: every alias target must
// itself be a key in the store).
type Container struct {
	Results map[int]*SearchResult // document index -> result
	Aliases map[string]uint8      // target word -> score in [0, 255]
}

// NewContainer returns an empty Container, ready for lazy population.
func NewContainer() *Container {
	return &Container{
		Results: make(map[int]*SearchResult),
		Aliases: make(map[string]uint8),
	}
}
