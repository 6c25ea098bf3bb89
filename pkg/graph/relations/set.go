package relations

import (
	"iter"
	"maps"
	"slices"
)

// Set is a read-only view of a set of block ids. The zero value is empty.
type Set struct {
	m map[string]struct{}
}

func newSet(m map[string]struct{}) Set { return Set{m: m} }

// SetOf builds a Set from ids.
func SetOf(ids ...string) Set {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return Set{m: m}
}

// Has reports whether id is a member of the set.
func (s Set) Has(id string) bool {
	_, ok := s.m[id]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.m) }

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s.m))
}

// All iterates over the members in unspecified order.
func (s Set) All() iter.Seq[string] {
	return maps.Keys(s.m)
}
