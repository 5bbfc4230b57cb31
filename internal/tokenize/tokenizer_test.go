package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_EmptyInput_YieldsEmptySequence(t *testing.T) {
	words := Tokenize("")
	assert.Empty(t, words)
}

func TestTokenize_PlainSentence_ReturnsWordsWithByteOffsets(t *testing.T) {
	words := Tokenize("Running runs runner")
	require.Len(t, words, 3)
	assert.Equal(t, "Running", words[0].Word)
	assert.Equal(t, 0, words[0].ByteOffset)
	assert.Equal(t, "runs", words[1].Word)
	assert.Equal(t, 8, words[1].ByteOffset)
	assert.Equal(t, "runner", words[2].Word)
	assert.Equal(t, 13, words[2].ByteOffset)
}

func TestTokenize_CJKIdeographs_SplitOnePerCodepoint(t *testing.T) {
	words := Tokenize("漢字")
	require.Len(t, words, 2)
	assert.Equal(t, "漢", words[0].Word)
	assert.Equal(t, 0, words[0].ByteOffset)
	assert.Equal(t, "字", words[1].Word)
	assert.Equal(t, 3, words[1].ByteOffset) // "漢" is 3 bytes in UTF-8
}

func TestTokenize_PlainSentence_RawLengthMatchesByteOffsetSpan(t *testing.T) {
	words := Tokenize("Running runs runner")
	require.Len(t, words, 3)
	assert.Equal(t, 7, words[0].RawLength)
	assert.Equal(t, 4, words[1].RawLength)
	assert.Equal(t, 6, words[2].RawLength)
}

// A fullwidth digit folds to a narrower ASCII digit under NFKC, so
// RawLength (bytes in the source text) differs from len(Word) (bytes in
// the normalized surface form) even though both describe one token.
func TestTokenize_NFKCShortensSpan_RawLengthTracksSourceNotNormalizedForm(t *testing.T) {
	words := Tokenize("１") // fullwidth "1", 3 bytes in UTF-8
	require.Len(t, words, 1)
	assert.Equal(t, "1", words[0].Word)
	assert.Equal(t, 3, words[0].RawLength)
	assert.NotEqual(t, len(words[0].Word), words[0].RawLength)
}

func TestTokenize_PunctuationOnly_YieldsNoTokens(t *testing.T) {
	words := Tokenize("... --- !!!")
	assert.Empty(t, words)
}

func TestNormalize_StripsPunctuationAndLowercases(t *testing.T) {
	got, ok := Normalize("\"Hello!\"")
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestNormalize_EmptyAfterStripping_Drops(t *testing.T) {
	_, ok := Normalize("...")
	assert.False(t, ok)
}

func TestNormalize_OverLengthCap_Drops(t *testing.T) {
	long := make([]byte, MaxWordLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, ok := Normalize(string(long))
	assert.False(t, ok)
}

func TestNormalize_IsIdempotent(t *testing.T) {
	once, ok := Normalize("Hello,")
	require.True(t, ok)
	twice, ok := Normalize(once)
	require.True(t, ok)
	assert.Equal(t, once, twice)
}

func TestIsCJKIdeographic_MixedScript_IsFalse(t *testing.T) {
	assert.False(t, IsCJKIdeographic("漢a"))
	assert.True(t, IsCJKIdeographic("漢字"))
	assert.False(t, IsCJKIdeographic(""))
}
