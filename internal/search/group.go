package search

import (
	"sort"

	"github.com/statidx/statidx/internal/docmodel"
)

// excerptGroup is a cluster of excerpt candidates whose positions fall
// within one excerpt window of each other (spec §5 "Excerpt rendering").
// Its score is the sum of its members' scores, and it renders centered on
// its highest-scoring member.
type excerptGroup struct {
	score   uint16
	center  excerptCandidate
	members []excerptCandidate
}

// groupExcerpts resolves each candidate's byte offset, clusters
// same-source candidates within windowSize bytes of their nearest
// same-source neighbor, and returns one excerptGroup per cluster. Clusters
// chain transitively: a run of matches each within windowSize of the next
// forms a single group, even if the ends of the run are farther apart than
// windowSize — this is what "fall within a window of each other" means
// when scanning a sorted position list.
func groupExcerpts(doc docmodel.Document, excerpts []ScoredExcerpt, windowSize int) []excerptGroup {
	candidates := make([]excerptCandidate, 0, len(excerpts))
	for _, ex := range excerpts {
		body, offset, length, ok := resolveOffset(doc, ex.Excerpt)
		if !ok {
			continue
		}
		candidates = append(candidates, excerptCandidate{scored: ex, body: body, offset: offset, length: length})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].scored.Source != candidates[j].scored.Source {
			return candidates[i].scored.Source < candidates[j].scored.Source
		}
		return candidates[i].offset < candidates[j].offset
	})

	var groups []excerptGroup
	for _, c := range candidates {
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			prev := last.members[len(last.members)-1]
			if prev.scored.Source == c.scored.Source && c.offset-prev.offset <= windowSize {
				last.members = append(last.members, c)
				last.score += c.scored.Score
				if c.scored.Score > last.center.scored.Score {
					last.center = c
				}
				continue
			}
		}
		groups = append(groups, excerptGroup{score: c.scored.Score, center: c, members: []excerptCandidate{c}})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].score != groups[j].score {
			return groups[i].score > groups[j].score
		}
		if groups[i].center.scored.Source != groups[j].center.scored.Source {
			return groups[i].center.scored.Source < groups[j].center.scored.Source
		}
		return groups[i].center.offset < groups[j].center.offset
	})

	return groups
}
