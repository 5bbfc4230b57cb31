package search

import (
	"sort"

	"github.com/statidx/statidx/internal/index"
)

// Result is one ranked document in a search response: its source Document,
// its total score across every matching term, and up to Config's
// NumberOfExcerpts rendered excerpts, in descending order of the group
// score that selected them.
type Result struct {
	Title    string
	URL      string
	Fields   map[string]string
	Score    uint16
	Excerpts []RenderedExcerpt
}

// MergeSearchValues combines the per-term Value lists produced by
// GetValues into a ranked Result slice (spec §5 "Merging and ranking"):
// scores for the same document are summed across every term that matched
// it (cross-term accumulation — each term's own Value.Score is already the
// max of that term's contributing paths, per GetValues), documents are
// ordered by total score descending with document index ascending as the
// tie-break (the earliest-built document wins ties), and the result list
// is truncated to cfg.NumberOfResults. Each surviving document's
// candidate excerpts are grouped by proximity (positions within
// cfg.ExcerptLength/2 of each other), each group is rendered centered on
// its highest-scoring member, and the top cfg.NumberOfExcerpts groups by
// descending group score are kept (spec §5 "Excerpt rendering").
func MergeSearchValues(idx *index.Index, values []Value, cfg Config) []Result {
	type accumulated struct {
		docIndex int
		score    uint16
		excerpts []ScoredExcerpt
	}

	byDoc := make(map[int]*accumulated)
	for _, v := range values {
		a, ok := byDoc[v.DocIndex]
		if !ok {
			a = &accumulated{docIndex: v.DocIndex}
			byDoc[v.DocIndex] = a
		}
		a.score += v.Score
		a.excerpts = append(a.excerpts, v.Excerpts...)
	}

	ranked := make([]*accumulated, 0, len(byDoc))
	for _, a := range byDoc {
		ranked = append(ranked, a)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].docIndex < ranked[j].docIndex
	})

	if len(ranked) > cfg.NumberOfResults {
		ranked = ranked[:cfg.NumberOfResults]
	}

	results := make([]Result, 0, len(ranked))
	for _, a := range ranked {
		if a.docIndex < 0 || a.docIndex >= len(idx.Documents) {
			continue
		}
		doc := idx.Documents[a.docIndex]

		windowSize := cfg.ExcerptLength / 2
		groups := groupExcerpts(doc, a.excerpts, windowSize)
		if len(groups) > cfg.NumberOfExcerpts {
			groups = groups[:cfg.NumberOfExcerpts]
		}

		rendered := make([]RenderedExcerpt, 0, len(groups))
		for _, g := range groups {
			rendered = append(rendered, renderGroup(g.center, g.members, cfg.ExcerptLength))
		}

		results = append(results, Result{
			Title:    doc.Title,
			URL:      doc.URL,
			Fields:   doc.Fields,
			Score:    a.score,
			Excerpts: rendered,
		})
	}

	return results
}

// Search runs a full query end to end: parse, look up every term, and
// merge (spec §5). An empty query yields an empty result set, not an
// error.
func Search(idx *index.Index, query string, cfg Config) []Result {
	terms := ParseQuery(query)
	var values []Value
	for _, term := range terms {
		values = append(values, GetValues(idx, term)...)
	}
	return MergeSearchValues(idx, values, cfg)
}
