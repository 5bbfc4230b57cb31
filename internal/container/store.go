package container

import "sort"

// Store is the Container Store (spec §3): a mapping from normalized word or
// prefix to Container. Filled sequentially by Fill during a build, and
// immutable once serialized. Read access (Get) is safe for concurrent use
// once filling has completed (spec §5); Store itself does not lock, since
// the engine that wraps it never mutates a Store after a build or sidecar
// merge completes on the goroutine that owns it.
type Store struct {
	containers map[string]*Container
}

// NewStore returns an empty Container Store.
func NewStore() *Store {
	return &Store{containers: make(map[string]*Container)}
}

// Get returns the container at key, or nil if no such key exists.
func (s *Store) Get(key string) *Container {
	return s.containers[key]
}

// GetOrCreate returns the container at key, creating and storing an empty
// one first if absent.
func (s *Store) GetOrCreate(key string) *Container {
	c, ok := s.containers[key]
	if !ok {
		c = NewContainer()
		s.containers[key] = c
	}
	return c
}

// Set installs container at key, overwriting any existing entry. Used by
// deserialization, where keys are already deduplicated in the wire format.
func (s *Store) Set(key string, c *Container) {
	s.containers[key] = c
}

// Len returns the number of containers in the store.
func (s *Store) Len() int {
	return len(s.containers)
}

// SortedKeys returns every container key in ascending order: the
// determinism the serializer and every build must honor (spec §4.3
// "Tie-breaks & determinism").
func (s *Store) SortedKeys() []string {
	keys := make([]string, 0, len(s.containers))
	for k := range s.containers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithOffsetDocIndices returns a copy of s in which every Results key (a
// document index) is shifted up by offset, leaving Aliases untouched since
// those reference container keys, not document indices. Used when splicing
// a sidecar's independently-built Store onto the end of an existing
// Index's document table (spec §4.5).
func (s *Store) WithOffsetDocIndices(offset int) *Store {
	shifted := NewStore()
	for key, c := range s.containers {
		nc := NewContainer()
		for doc, result := range c.Results {
			nc.Results[doc+offset] = result
		}
		for target, score := range c.Aliases {
			nc.Aliases[target] = score
		}
		shifted.containers[key] = nc
	}
	return shifted
}

// Merge union-merges other into s: for any key present in both, results are
// concatenated (with other's document indices already offset by the
// caller) and aliases are merged with earliest-wins semantics — s's
// existing alias score for a target always survives. For a key present
// only in other, its container is adopted as-is. Used to apply a sidecar
// chunk onto an already-parsed index (spec §4.5).
func (s *Store) Merge(other *Store) {
	for _, key := range other.SortedKeys() {
		oc := other.containers[key]
		sc, ok := s.containers[key]
		if !ok {
			s.containers[key] = oc
			continue
		}
		for doc, result := range oc.Results {
			sc.Results[doc] = result
		}
		for target, score := range oc.Aliases {
			if _, exists := sc.Aliases[target]; !exists {
				sc.Aliases[target] = score
			}
		}
	}
}
