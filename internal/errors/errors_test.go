package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatidxError_Error_IncludesCauseWhenPresent(t *testing.T) {
	cause := errors.New("disk full")
	err := NewBuildError(ErrCodeBuildIO, "writing index", cause)

	assert.Contains(t, err.Error(), ErrCodeBuildIO)
	assert.Contains(t, err.Error(), "writing index")
	assert.Contains(t, err.Error(), "disk full")
}

func TestStatidxError_Error_OmitsCauseWhenNil(t *testing.T) {
	err := NewSearchError(ErrCodeQueryParse, "empty query", nil)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestStatidxError_Unwrap_ReturnsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewIndexParseError(ErrCodeTruncatedPayload, "short read", cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestStatidxError_Is_MatchesByCode(t *testing.T) {
	a := NewIndexParseError(ErrCodeBadMagic, "first", nil)
	b := NewIndexParseError(ErrCodeBadMagic, "second", nil)
	c := NewIndexParseError(ErrCodeUnsupportedVersion, "third", nil)

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestStatidxError_WithDetail_ChainsAndStores(t *testing.T) {
	err := NewBuildError(ErrCodeBuildConfig, "bad config", nil).
		WithDetail("field", "excerpts_per_result").
		WithDetail("value", "-1")

	assert.Equal(t, "excerpts_per_result", err.Details["field"])
	assert.Equal(t, "-1", err.Details["value"])
}
