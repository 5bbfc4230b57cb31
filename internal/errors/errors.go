package errors

import "fmt"

// StatidxError is the structured error type behind BuildError,
// IndexParseError, and SearchError (spec §7). Category tells callers which
// of the three kinds they're looking at; Code is stable across releases.
type StatidxError struct {
	Code     string
	Category Category
	Message  string
	Details  map[string]string
	Cause    error
}

func (e *StatidxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is/errors.As against the underlying cause.
func (e *StatidxError) Unwrap() error {
	return e.Cause
}

// Is matches another *StatidxError with the same Code, so callers can do
// errors.Is(err, errors.NewIndexParseError(errors.ErrCodeBadMagic, "", nil)).
func (e *StatidxError) Is(target error) bool {
	t, ok := target.(*StatidxError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail attaches a key-value detail and returns e for chaining.
func (e *StatidxError) WithDetail(key, value string) *StatidxError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// NewBuildError constructs a BuildError (spec §7): document parse failure,
// I/O failure, invalid configuration, or output write failure.
func NewBuildError(code, message string, cause error) *StatidxError {
	return &StatidxError{Code: code, Category: CategoryBuild, Message: message, Cause: cause}
}

// NewIndexParseError constructs an IndexParseError: bad magic, unsupported
// version, truncated payload, or sidecar incompatibility.
func NewIndexParseError(code, message string, cause error) *StatidxError {
	return &StatidxError{Code: code, Category: CategoryIndexParse, Message: message, Cause: cause}
}

// NewSearchError constructs a SearchError: query parse failure, index-type
// mismatch on merge, or an internal invariant violation. A SearchError is
// fatal only for the query that produced it, never for the process.
func NewSearchError(code, message string, cause error) *StatidxError {
	return &StatidxError{Code: code, Category: CategorySearch, Message: message, Cause: cause}
}
