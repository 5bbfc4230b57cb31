// Package index defines the in-memory representation of a parsed statidx
// index file: the document table and the Container Store built against it.
// It is the shared type between internal/wire (which produces one by
// decoding bytes, or consumes one to encode them) and internal/search
// (which queries one).
package index

import (
	"github.com/statidx/statidx/internal/container"
	"github.com/statidx/statidx/internal/docmodel"
)

// Index is a fully parsed index: the document table, in build order, and
// the Container Store keyed against that table's indices.
type Index struct {
	Documents []docmodel.Document
	Store     *container.Store
}

// New returns an empty Index backed by a fresh Container Store.
func New() *Index {
	return &Index{Store: container.NewStore()}
}
