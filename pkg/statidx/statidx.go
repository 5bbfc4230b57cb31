// Package statidx is the public library surface for building and
// querying a static full-text search index (spec's stork-derived API):
// BuildIndex, ParseBytesAsIndex, AddSidecarBytesToIndex, Search,
// GetSearchValues, and MergeSearchValues.
package statidx

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/statidx/statidx/internal/container"
	"github.com/statidx/statidx/internal/docmodel"
	staterrors "github.com/statidx/statidx/internal/errors"
	"github.com/statidx/statidx/internal/index"
	"github.com/statidx/statidx/internal/progress"
	"github.com/statidx/statidx/internal/search"
	"github.com/statidx/statidx/internal/stem"
	"github.com/statidx/statidx/internal/tokenize"
	"github.com/statidx/statidx/internal/wire"
)

// Re-exported types, so callers only need to import this one package for
// the common path.
type (
	InputDocument = docmodel.InputDocument
	StemAlgorithm = docmodel.StemAlgorithm
	Index         = index.Index
	SearchConfig  = search.Config
	SearchResult  = search.Result
	BuildConfig   = container.BuildConfig
)

const (
	StemNone    = docmodel.StemNone
	StemEnglish = docmodel.StemEnglish
	StemSpanish = docmodel.StemSpanish
	StemFrench  = docmodel.StemFrench
	StemGerman  = docmodel.StemGerman
	StemRussian = docmodel.StemRussian
)

// DefaultBuildConfig returns the defaults named in spec §6.
func DefaultBuildConfig() BuildConfig { return container.DefaultBuildConfig() }

// DefaultSearchConfig returns stork's published query-time defaults.
func DefaultSearchConfig() SearchConfig { return search.DefaultConfig() }

// BuildSuccessValue reports the outcome of a successful BuildIndex call.
type BuildSuccessValue struct {
	BuildID    string
	Documents  int
	Containers int
	Duration   time.Duration
	Errors     int
	Warnings   int
}

// BuildIndex tokenizes inputs, fills a Container Store from them, and
// returns the resulting Index along with build statistics (spec §4
// "Build pipeline"). reporter may be nil, in which case progress is not
// reported.
func BuildIndex(ctx context.Context, cfg BuildConfig, inputs []InputDocument, reporter progress.Reporter) (*Index, BuildSuccessValue, error) {
	start := time.Now()
	buildID := uuid.NewString()

	if reporter == nil {
		reporter = progress.NewPlainReporter(progress.NewConfig(io.Discard))
	}
	if err := reporter.Start(ctx); err != nil {
		return nil, BuildSuccessValue{}, staterrors.NewBuildError(staterrors.ErrCodeBuildIO, "starting progress reporter", err)
	}
	defer reporter.Stop()

	entries := make([]docmodel.NormalizedEntry, 0, len(inputs))
	documents := make([]docmodel.Document, 0, len(inputs))
	warnings := 0

	for i, input := range inputs {
		reporter.Update(progress.Event{
			Stage: progress.StageTokenizing, Current: i + 1, Total: len(inputs), CurrentFile: input.URL,
		})

		words := tokenize.Tokenize(input.Body)
		spans := make([]docmodel.WordSpan, 0, len(words))
		for _, w := range words {
			if w.RawLength > 1<<16-1 {
				warnings++
				reporter.AddError(progress.ErrorEvent{File: input.URL, Err: errWordTooLong, IsWarn: true})
				continue
			}
			spans = append(spans, docmodel.WordSpan{Offset: uint32(w.ByteOffset), Length: uint16(w.RawLength)})
		}

		entries = append(entries, docmodel.NormalizedEntry{
			Title: input.Title, URL: input.URL, Fields: input.Fields,
			ContentWords: words, StemAlgorithm: input.StemAlgorithm,
		})
		documents = append(documents, docmodel.Document{
			Title: input.Title, URL: input.URL, Fields: input.Fields,
			Body: input.Body, ContentWords: spans,
		})
	}

	reporter.Update(progress.Event{Stage: progress.StageBuilding, Total: len(entries)})
	stems := stem.BuildIndex(entries)

	store := container.NewStore()
	container.Fill(cfg, entries, stems, store)

	reporter.Update(progress.Event{Stage: progress.StageAliasing, Total: store.Len()})

	idx := &index.Index{Documents: documents, Store: store}

	stats := BuildSuccessValue{
		BuildID:    buildID,
		Documents:  len(documents),
		Containers: store.Len(),
		Duration:   time.Since(start),
		Warnings:   warnings,
	}
	reporter.Complete(progress.CompletionStats{
		Documents: stats.Documents, Containers: stats.Containers,
		Duration: stats.Duration, Warnings: stats.Warnings,
	})

	return idx, stats, nil
}

var errWordTooLong = staterrors.NewBuildError(staterrors.ErrCodeDocumentParse, "word exceeds maximum span length", nil)

// ParseBytesAsIndex decodes a previously built index file.
func ParseBytesAsIndex(data []byte) (*Index, error) {
	return wire.Decode(data)
}

// AddSidecarBytesToIndex splices a sidecar chunk's documents and containers
// onto idx in place.
func AddSidecarBytesToIndex(idx *Index, data []byte) error {
	return wire.AddSidecarBytes(idx, data)
}

// EncodeIndex serializes idx to the wire format BuildIndex's output is
// expected to be written in.
func EncodeIndex(idx *Index) ([]byte, error) {
	return wire.Encode(idx)
}

// GetSearchValues resolves a single query term against idx.
func GetSearchValues(idx *Index, term string) []search.Value {
	return search.GetValues(idx, search.Term(term))
}

// MergeSearchValues ranks and renders a flat list of per-term Values into
// a final Result slice.
func MergeSearchValues(idx *Index, values []search.Value, cfg SearchConfig) []SearchResult {
	return search.MergeSearchValues(idx, values, cfg)
}

// Search runs a full query end to end against idx.
func Search(idx *Index, query string, cfg SearchConfig) []SearchResult {
	return search.Search(idx, query, cfg)
}
