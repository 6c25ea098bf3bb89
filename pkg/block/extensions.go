package block

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Extensions is an insertion-ordered bag of fields that the block model does
// not interpret. The zero value and a nil pointer are both empty and safe to
// read; use NewExtensions before calling Set.
type Extensions struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewExtensions returns an empty bag.
func NewExtensions() *Extensions {
	return &Extensions{m: orderedmap.New[string, any]()}
}

// Set stores value under key. A key that already exists keeps its position.
func (e *Extensions) Set(key string, value any) {
	if e.m == nil {
		e.m = orderedmap.New[string, any]()
	}
	e.m.Set(key, value)
}

// Get returns the value stored under key.
func (e *Extensions) Get(key string) (any, bool) {
	if e == nil || e.m == nil {
		return nil, false
	}
	return e.m.Get(key)
}

// Len returns the number of fields in the bag.
func (e *Extensions) Len() int {
	if e == nil || e.m == nil {
		return 0
	}
	return e.m.Len()
}

// Keys returns the field names in insertion order.
func (e *Extensions) Keys() []string {
	keys := make([]string, 0, e.Len())
	for k := range e.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the fields in insertion order.
func (e *Extensions) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if e == nil || e.m == nil {
			return
		}
		for pair := e.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Clone copies the bag container. Values are copied by reference.
// Cloning a nil or empty bag returns nil.
func (e *Extensions) Clone() *Extensions {
	if e.Len() == 0 {
		return nil
	}
	out := NewExtensions()
	for k, v := range e.All() {
		out.m.Set(k, v)
	}
	return out
}
