package stem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statidx/statidx/internal/docmodel"
)

func TestStem_English_ReducesRunningFamilyToSameRoot(t *testing.T) {
	run := Stem(docmodel.StemEnglish, "running")
	runs := Stem(docmodel.StemEnglish, "runs")
	assert.Equal(t, run, runs)
}

func TestStem_None_ReturnsWordUnchanged(t *testing.T) {
	assert.Equal(t, "running", Stem(docmodel.StemNone, "running"))
}

func TestBuildIndex_ReverseStems_FindsSiblingWords(t *testing.T) {
	entries := []docmodel.NormalizedEntry{
		{
			StemAlgorithm: docmodel.StemEnglish,
			ContentWords: []docmodel.AnnotatedWord{
				{Word: "Running"},
				{Word: "runs"},
				{Word: "runner"},
			},
		},
	}

	idx := BuildIndex(entries)

	siblings := idx.ReverseStems(docmodel.StemEnglish, "running")
	require.NotEmpty(t, siblings)
	assert.Contains(t, siblings, "runs")
}

func TestBuildIndex_UnstemmedEntry_ContributesNothing(t *testing.T) {
	entries := []docmodel.NormalizedEntry{
		{
			StemAlgorithm: docmodel.StemNone,
			ContentWords:  []docmodel.AnnotatedWord{{Word: "running"}},
		},
	}

	idx := BuildIndex(entries)
	assert.Empty(t, idx.ReverseStems(docmodel.StemEnglish, "running"))
}
