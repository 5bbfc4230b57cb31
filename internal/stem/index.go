package stem

import (
	"sort"

	"github.com/statidx/statidx/internal/docmodel"
	"github.com/statidx/statidx/internal/tokenize"
)

// Index is the prebuilt mapping from stem string to the deduplicated,
// sorted list of surface words in the corpus that reduce to it (spec §4.3,
// "Stem Index construction (prior pass)").
type Index struct {
	byStem map[string][]string
}

// BuildIndex scans every word in every stemmed entry's body, stems it under
// that entry's algorithm, and records stem -> surface word. Entries with
// StemNone contribute nothing. Built once per corpus, before the
// container-filling pass.
func BuildIndex(entries []docmodel.NormalizedEntry) *Index {
	seen := make(map[string]map[string]struct{})

	for _, entry := range entries {
		if entry.StemAlgorithm == docmodel.StemNone {
			continue
		}
		for _, w := range entry.ContentWords {
			normalized, ok := tokenize.Normalize(w.Word)
			if !ok {
				continue
			}
			s := Stem(entry.StemAlgorithm, normalized)
			set := seen[s]
			if set == nil {
				set = make(map[string]struct{})
				seen[s] = set
			}
			set[normalized] = struct{}{}
		}
	}

	idx := &Index{byStem: make(map[string][]string, len(seen))}
	for s, set := range seen {
		words := make([]string, 0, len(set))
		for w := range set {
			words = append(words, w)
		}
		sort.Strings(words)
		idx.byStem[s] = words
	}
	return idx
}

// ReverseStems returns the surface words sharing a stem with word under
// algorithm, including word itself if it was indexed. Callers filter word
// back out (spec §4.3 step 2C: "not equal to the current normalized word").
func (idx *Index) ReverseStems(algorithm docmodel.StemAlgorithm, word string) []string {
	if idx == nil || algorithm == docmodel.StemNone {
		return nil
	}
	return idx.byStem[Stem(algorithm, word)]
}
