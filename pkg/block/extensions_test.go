package block

import (
	"slices"
	"testing"
)

func TestExtensions_Order(t *testing.T) {
	e := NewExtensions()
	e.Set("zeta", 1)
	e.Set("alpha", 2)
	e.Set("mid", 3)
	e.Set("zeta", 4) // overwrite keeps position

	if got, want := e.Keys(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := e.Get("zeta"); v != 4 {
		t.Errorf("Get(zeta) = %v, want 4", v)
	}
}

func TestExtensions_NilSafe(t *testing.T) {
	var e *Extensions
	if e.Len() != 0 {
		t.Errorf("nil Len() = %d", e.Len())
	}
	if _, ok := e.Get("x"); ok {
		t.Error("nil Get() reported a hit")
	}
	if len(e.Keys()) != 0 {
		t.Error("nil Keys() not empty")
	}
	if e.Clone() != nil {
		t.Error("nil Clone() not nil")
	}

	var zero Extensions
	zero.Set("a", 1)
	if zero.Len() != 1 {
		t.Errorf("zero-value Set did not store: Len() = %d", zero.Len())
	}
}

func TestExtensions_AllStopsEarly(t *testing.T) {
	e := NewExtensions()
	e.Set("a", 1)
	e.Set("b", 2)

	var seen []string
	for k := range e.All() {
		seen = append(seen, k)
		break
	}
	if len(seen) != 1 {
		t.Errorf("All() yielded %d keys after break", len(seen))
	}
}
