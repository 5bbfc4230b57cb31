package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statidx/statidx/internal/container"
	"github.com/statidx/statidx/internal/docmodel"
	"github.com/statidx/statidx/internal/index"
	"github.com/statidx/statidx/internal/stem"
	"github.com/statidx/statidx/internal/tokenize"
)

func buildTestIndex(docs []docmodel.InputDocument) *index.Index {
	entries := make([]docmodel.NormalizedEntry, len(docs))
	documents := make([]docmodel.Document, len(docs))
	for i, d := range docs {
		words := tokenize.Tokenize(d.Body)
		spans := make([]docmodel.WordSpan, len(words))
		for j, w := range words {
			spans[j] = docmodel.WordSpan{Offset: uint32(w.ByteOffset), Length: uint16(w.RawLength)}
		}
		entries[i] = docmodel.NormalizedEntry{
			Title: d.Title, URL: d.URL, Fields: d.Fields,
			ContentWords: words, StemAlgorithm: d.StemAlgorithm,
		}
		documents[i] = docmodel.Document{
			Title: d.Title, URL: d.URL, Fields: d.Fields,
			Body: d.Body, ContentWords: spans,
		}
	}

	stems := stem.BuildIndex(entries)
	store := container.NewStore()
	container.Fill(container.DefaultBuildConfig(), entries, stems, store)
	return &index.Index{Documents: documents, Store: store}
}

func TestParseQuery_DropsPunctuationOnlyTokens(t *testing.T) {
	terms := ParseQuery("hello, world!!!")
	require.Len(t, terms, 2)
	assert.Equal(t, Term("hello"), terms[0])
	assert.Equal(t, Term("world"), terms[1])
}

func TestGetValues_DirectHit_ScoresExact(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "Doc A", Body: "the quick brown fox"},
	})

	values := GetValues(idx, "quick")
	require.Len(t, values, 1)
	assert.Equal(t, 0, values[0].DocIndex)
	assert.Equal(t, uint16(container.ExactScore), values[0].Score)
}

func TestGetValues_AliasHit_ScoresAliasValue(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "", Body: "application"},
	})

	values := GetValues(idx, "app")
	require.Len(t, values, 1)
	assert.Less(t, values[0].Score, uint16(container.ExactScore))
	assert.Greater(t, values[0].Score, uint16(0))
}

func TestGetValues_UnknownTerm_ReturnsNil(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{{Title: "", Body: "apple"}})
	assert.Nil(t, GetValues(idx, "zzz"))
}

// A document reachable by both a direct hit and an alias of the same term
// scores as the better of the two paths, not their sum.
func TestGetValues_DirectHitAndAliasToSameDoc_TakesMaxNotSum(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "", Body: "app apple"},
	})

	values := GetValues(idx, "app")
	require.Len(t, values, 1)
	assert.Equal(t, uint16(container.ExactScore), values[0].Score)
}

// S2: a stemmed document is findable by a sibling word sharing its stem.
func TestSearch_StemmedQuery_FindsSiblingWord(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "Running Tips", Body: "Running is a sport. Runners run often.", StemAlgorithm: docmodel.StemEnglish},
	})

	results := Search(idx, "runner", DefaultConfig())
	require.Len(t, results, 1)
	assert.Equal(t, "Running Tips", results[0].Title)
}

func TestMergeSearchValues_SumsAcrossTerms_RanksByScoreThenDocIndex(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "One term", Body: "apple"},
		{Title: "Both terms", Body: "apple banana"},
	})

	results := Search(idx, "apple banana", DefaultConfig())
	require.Len(t, results, 2)
	assert.Equal(t, "Both terms", results[0].Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestMergeSearchValues_TruncatesToNumberOfResults(t *testing.T) {
	docs := make([]docmodel.InputDocument, 0, 20)
	for i := 0; i < 20; i++ {
		docs = append(docs, docmodel.InputDocument{Title: "Doc", Body: "common"})
	}
	idx := buildTestIndex(docs)

	cfg := DefaultConfig()
	cfg.NumberOfResults = 5
	results := Search(idx, "common", cfg)
	assert.Len(t, results, 5)
}

func TestSearch_EmptyQuery_ReturnsNoResults(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{{Title: "Doc", Body: "apple"}})
	assert.Empty(t, Search(idx, "", DefaultConfig()))
}

func TestSearch_ExcerptFidelity_HighlightCoversMatchedWord(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "Doc", Body: "the quick brown fox jumps over the lazy dog"},
	})

	results := Search(idx, "brown", DefaultConfig())
	require.Len(t, results, 1)
	require.NotEmpty(t, results[0].Excerpts)

	excerpt := results[0].Excerpts[0]
	require.Len(t, excerpt.Highlights, 1)
	h := excerpt.Highlights[0]
	assert.Equal(t, "brown", excerpt.Text[h.Beginning:h.Beginning+h.Length])
}

func TestSearch_ExcerptCount_RespectsNumberOfExcerpts(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "Doc", Body: "apple apple apple apple apple apple apple apple"},
	})

	cfg := DefaultConfig()
	cfg.NumberOfExcerpts = 2
	results := Search(idx, "apple", cfg)
	require.Len(t, results, 1)
	assert.LessOrEqual(t, len(results[0].Excerpts), 2)
}

// Two occurrences far enough apart to form separate excerpt groups: "apple"
// (a shorter, higher-scoring prefix alias of "app") should win the single
// excerpt slot over "application" (a longer, lower-scoring alias).
func TestSearch_ExcerptGrouping_SelectsHighestScoringGroupWhenOverNumberOfExcerpts(t *testing.T) {
	filler := strings.Repeat("zzzzzzzzzz ", 10)
	body := "apple " + filler + "application"
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "Doc", Body: body},
	})

	cfg := DefaultConfig()
	cfg.NumberOfExcerpts = 1
	results := Search(idx, "app", cfg)
	require.Len(t, results, 1)
	require.Len(t, results[0].Excerpts, 1)

	excerpt := results[0].Excerpts[0]
	require.Len(t, excerpt.Highlights, 1)
	h := excerpt.Highlights[0]
	assert.Equal(t, "apple", excerpt.Text[h.Beginning:h.Beginning+h.Length])
}

func TestEngine_Search_MatchesPlainSearch(t *testing.T) {
	idx := buildTestIndex([]docmodel.InputDocument{
		{Title: "Doc", Body: "apple banana"},
	})

	engine := NewEngine(idx, DefaultConfig())
	want := Search(idx, "apple", DefaultConfig())
	got := engine.Search("apple")
	assert.Equal(t, want, got)

	// Second call should hit the cache and still agree.
	got2 := engine.Search("apple")
	assert.Equal(t, got, got2)
}
