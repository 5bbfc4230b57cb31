// Package errors provides the structured error type used across statidx's
// library surface: build_index, parse_bytes_as_index,
// add_sidecar_bytes_to_index, and search (spec §7).
//
// Error codes follow ERR_XXX_DESCRIPTION where:
//   - 1XX: build errors (document parsing, I/O, configuration, output)
//   - 2XX: index parse errors (envelope, payload, sidecar compatibility)
//   - 3XX: search errors (query parsing, index mismatches, internal faults)
package errors

// Category classifies which stage of the pipeline produced an error.
type Category string

const (
	CategoryBuild      Category = "BUILD"
	CategoryIndexParse Category = "INDEX_PARSE"
	CategorySearch     Category = "SEARCH"
)

const (
	// Build errors (1xx)
	ErrCodeDocumentParse = "ERR_101_DOCUMENT_PARSE"
	ErrCodeBuildIO       = "ERR_102_BUILD_IO"
	ErrCodeBuildConfig   = "ERR_103_BUILD_CONFIG_INVALID"
	ErrCodeBuildWrite    = "ERR_104_BUILD_WRITE"

	// Index parse errors (2xx)
	ErrCodeBadMagic               = "ERR_201_BAD_MAGIC"
	ErrCodeUnsupportedVersion     = "ERR_202_UNSUPPORTED_VERSION"
	ErrCodeTruncatedPayload       = "ERR_203_TRUNCATED_PAYLOAD"
	ErrCodeSidecarVersionMismatch = "ERR_204_SIDECAR_VERSION_MISMATCH"
	ErrCodeSidecarOverlap         = "ERR_205_SIDECAR_OVERLAP"

	// Search errors (3xx)
	ErrCodeQueryParse        = "ERR_301_QUERY_PARSE"
	ErrCodeIndexTypeMismatch = "ERR_302_INDEX_TYPE_MISMATCH"
	ErrCodeSearchInternal    = "ERR_303_SEARCH_INTERNAL"
)
