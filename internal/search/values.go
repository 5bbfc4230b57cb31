package search

import (
	"sort"

	"github.com/statidx/statidx/internal/container"
	"github.com/statidx/statidx/internal/index"
)

// ScoredExcerpt is a candidate Excerpt annotated with the score of the
// path (direct hit or a specific alias) that surfaced it, so that
// cross-term excerpt grouping at merge time can pick the highest-scoring
// member of each window (spec §5 "a set of Excerpts annotated with their
// contributing term and score").
type ScoredExcerpt struct {
	container.Excerpt
	Score uint16
}

// Value is one document's contribution to a single term's search: the
// document it matched, that term's score for this document, and every
// Excerpt gathered along the way.
type Value struct {
	DocIndex int
	Score    uint16
	Excerpts []ScoredExcerpt
}

// GetValues resolves a single term against idx's Container Store: the
// term's own container contributes its direct results at ExactScore, and
// each of its aliases contributes the alias's target container's results at
// the alias's score (spec §3, §5 "Per-term value lookup"). Spec §5 is
// explicit that a single term's contribution to a document is the max
// score of any path that reaches it, not a sum — a document reachable by
// both a direct hit and an alias of the same term scores as the better of
// the two, not their total. Cross-term accumulation (summing each
// matching term's Value.Score) happens separately in MergeSearchValues.
//
// Results are returned sorted by DocIndex for determinism; callers that
// care about ranking use MergeSearchValues.
func GetValues(idx *index.Index, term Term) []Value {
	c := idx.Store.Get(string(term))
	if c == nil {
		return nil
	}

	byDoc := make(map[int]*Value)
	accumulate(byDoc, c.Results, container.ExactScore)

	for target, score := range c.Aliases {
		targetContainer := idx.Store.Get(target)
		if targetContainer == nil {
			continue
		}
		accumulate(byDoc, targetContainer.Results, score)
	}

	values := make([]Value, 0, len(byDoc))
	for _, v := range byDoc {
		values = append(values, *v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i].DocIndex < values[j].DocIndex })
	return values
}

func accumulate(byDoc map[int]*Value, results map[int]*container.SearchResult, score uint8) {
	for doc, result := range results {
		v, ok := byDoc[doc]
		if !ok {
			v = &Value{DocIndex: doc}
			byDoc[doc] = v
		}
		if uint16(score) > v.Score {
			v.Score = uint16(score)
		}
		for _, ex := range result.Excerpts {
			v.Excerpts = append(v.Excerpts, ScoredExcerpt{Excerpt: ex, Score: uint16(score)})
		}
	}
}
