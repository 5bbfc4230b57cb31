package search

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/statidx/statidx/internal/index"
)

const defaultCacheSize = 256

// Engine wraps an Index with a bounded LRU cache of recent per-term
// GetValues lookups, so a query session that repeats or shares terms
// across requests (prefix-as-you-type search boxes being the common case)
// doesn't re-walk the Container Store for the same term twice. The cache
// holds no document bodies and is safe to drop at any time; it is pure
// memoization over GetValues.
type Engine struct {
	idx   *index.Index
	cache *lru.Cache[Term, []Value]
	cfg   Config
}

// NewEngine builds an Engine over idx with cfg as its default search
// configuration and a fixed-size term cache.
func NewEngine(idx *index.Index, cfg Config) *Engine {
	cache, err := lru.New[Term, []Value](defaultCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// defaultCacheSize never is.
		panic(err)
	}
	return &Engine{idx: idx, cache: cache, cfg: cfg}
}

// GetValues returns GetValues(term), memoized.
func (e *Engine) GetValues(term Term) []Value {
	if values, ok := e.cache.Get(term); ok {
		return values
	}
	values := GetValues(e.idx, term)
	e.cache.Add(term, values)
	return values
}

// Search runs a query using the engine's cached per-term lookups and its
// default Config.
func (e *Engine) Search(query string) []Result {
	terms := ParseQuery(query)
	var values []Value
	for _, term := range terms {
		values = append(values, e.GetValues(term)...)
	}
	return MergeSearchValues(e.idx, values, e.cfg)
}

// Index returns the underlying Index.
func (e *Engine) Index() *index.Index {
	return e.idx
}
