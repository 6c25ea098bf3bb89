package pipeline

import (
	"context"
	"slices"
	"testing"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/cache"
	"github.com/matzehuels/blockgraph/pkg/errors"
	"github.com/matzehuels/blockgraph/pkg/layout"
	"github.com/matzehuels/blockgraph/pkg/observability"
)

func mk(id string, prereqs, parents []string) block.Block {
	return block.Block{
		ID:            id,
		Title:         block.Title{DE: id, EN: id},
		Prerequisites: prereqs,
		Parents:       parents,
	}
}

func diamond() []block.Block {
	return []block.Block{
		mk("a", nil, nil),
		mk("b", []string{"a"}, nil),
		mk("c", []string{"a"}, nil),
		mk("d", []string{"b", "c", "a"}, nil),
	}
}

type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options: %v", err)
	}
	if opts.Layout != layout.DefaultConfig() {
		t.Errorf("Layout = %+v, want defaults", opts.Layout)
	}

	// Idempotent
	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil || opts.Layout != before.Layout {
		t.Errorf("second call changed options: %+v, %v", opts.Layout, err)
	}

	bad := Options{Layout: layout.DefaultConfig()}
	bad.Layout.NodeWidth = -1
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("negative width error = %v, want INVALID_CONFIG", err)
	}
}

func TestRunnerLayout(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Layout(context.Background(), diamond(), Options{Reduce: true})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	wantLevels := map[string]int{"a": 0, "b": 1, "c": 1, "d": 2}
	for id, want := range wantLevels {
		if got := res.Levels[id]; got != want {
			t.Errorf("level[%s] = %d, want %d", id, got, want)
		}
	}
	if res.Stats.BlockCount != 4 || res.Stats.LevelCount != 3 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Diagnostics.RemovedEdges != 1 || len(res.Edges) != 4 {
		t.Errorf("reduction kept %d edges, removed %d", len(res.Edges), res.Diagnostics.RemovedEdges)
	}
	if !res.Diagnostics.Acyclic() {
		t.Errorf("Cycles = %v, want none", res.Diagnostics.Cycles)
	}
	if got := res.Diagnostics.TopologicalOrder; !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("TopologicalOrder = %v", got)
	}
	if got := res.Categories.Visible.Len(); got != 4 {
		t.Errorf("root view shows %d blocks, want 4", got)
	}
	if res.CacheHit {
		t.Error("NullCache run reported a cache hit")
	}
}

func TestRunnerLayout_Errors(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	dup := []block.Block{mk("a", nil, nil), mk("a", nil, nil)}
	_, err := r.Layout(context.Background(), dup, Options{})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("duplicate ids error = %v, want DUPLICATE_ID", err)
	}
	if ids := errors.DuplicateIDs(err); !slices.Equal(ids, []string{"a"}) {
		t.Errorf("DuplicateIDs = %v", ids)
	}

	self := []block.Block{mk("a", []string{"a"}, nil)}
	if _, err := r.Layout(context.Background(), self, Options{}); !errors.Is(err, errors.ErrCodeSelfLoop) {
		t.Errorf("self loop error = %v, want SELF_LOOP", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Layout(ctx, diamond(), Options{}); err == nil {
		t.Error("cancelled context should fail")
	}
}

func TestRunnerLayout_Cycles(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	blocks := []block.Block{mk("a", []string{"b"}, nil), mk("b", []string{"a"}, nil)}
	res, err := r.Layout(context.Background(), blocks, Options{})
	if err != nil {
		t.Fatalf("cyclic input should lay out: %v", err)
	}
	if len(res.Diagnostics.Cycles) != 1 {
		t.Errorf("Cycles = %v, want one", res.Diagnostics.Cycles)
	}
	if res.Diagnostics.TopologicalOrder != nil {
		t.Errorf("TopologicalOrder = %v, want nil", res.Diagnostics.TopologicalOrder)
	}
	if len(res.Positions) != 2 {
		t.Errorf("positioned %d blocks, want 2", len(res.Positions))
	}
}

func TestRunnerLayout_Cache(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	r := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer r.Close()

	first, err := r.Layout(ctx, diamond(), Options{})
	if err != nil || first.CacheHit {
		t.Fatalf("first run: hit=%v err=%v", first != nil && first.CacheHit, err)
	}
	second, err := r.Layout(ctx, diamond(), Options{Selected: "b"})
	if err != nil || !second.CacheHit {
		t.Fatalf("second run should hit the cache: %v", err)
	}
	if second.Positions["d"] != first.Positions["d"] {
		t.Errorf("cached position %+v differs from %+v", second.Positions["d"], first.Positions["d"])
	}
	if second.Categories.Visible.Has("d") {
		t.Error("categories must follow the selection, not the cache")
	}

	if res, _ := r.Layout(ctx, diamond(), Options{Refresh: true}); res.CacheHit {
		t.Error("Refresh should bypass the cache")
	}
	if res, _ := r.Layout(ctx, diamond(), Options{Reduce: true}); res.CacheHit {
		t.Error("different options should miss")
	}

	if hooks.hits != 1 || hooks.misses != 2 || hooks.sets != 3 {
		t.Errorf("hooks hits=%d misses=%d sets=%d, want 1/2/3", hooks.hits, hooks.misses, hooks.sets)
	}
}

func TestRunnerLayout_Categories(t *testing.T) {
	blocks := []block.Block{
		mk("r", nil, nil),
		mk("x", nil, []string{"r"}),
		mk("y", nil, []string{"r"}),
		mk("z", nil, []string{"x"}),
	}
	r := NewRunner(nil, nil, nil)

	root, err := r.Layout(context.Background(), blocks, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := root.Categories.Visible.Sorted(); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("root view visible = %v, want [x y]", got)
	}

	drill, err := r.Layout(context.Background(), blocks, Options{Selected: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if got := drill.Categories.Visible.Sorted(); !slices.Equal(got, []string{"x", "z"}) {
		t.Errorf("drill view visible = %v, want [x z]", got)
	}
	if drill.Categories.Dimmed.Len() != 0 {
		t.Errorf("dimmed = %v, want none", drill.Categories.Dimmed.Sorted())
	}
}

func TestResultDocument(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Layout(context.Background(), diamond(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	doc := res.Document()

	if doc.Orientation != layout.TopToBottom || doc.Width != 440 || doc.Height != 340 {
		t.Errorf("document %s %vx%v, want ttb 440x340", doc.Orientation, doc.Width, doc.Height)
	}

	var ids []string
	for _, b := range doc.Blocks {
		ids = append(ids, b.Block.ID)
		if b.Position.X < 0 || b.Position.Y < 0 {
			t.Errorf("%s at %+v, want non-negative coordinates", b.Block.ID, b.Position)
		}
	}
	if !slices.Equal(ids, []string{"a", "b", "c", "d"}) {
		t.Errorf("block order = %v", ids)
	}

	for _, e := range doc.Edges {
		if e.From == "a" && e.To == "b" {
			want := layout.Line{X1: 220, Y1: 60, X2: 100, Y2: 140}
			if e.Line == nil || *e.Line != want {
				t.Errorf("a->b line = %v, want %+v", e.Line, want)
			}
		}
	}
}

func TestResultDocument_DanglingEdge(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	blocks := []block.Block{mk("a", []string{"ghost"}, nil)}
	res, err := r.Layout(context.Background(), blocks, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Diagnostics.DanglingEdges != 1 {
		t.Errorf("DanglingEdges = %d, want 1", res.Diagnostics.DanglingEdges)
	}
	doc := res.Document()
	if len(doc.Edges) != 1 || doc.Edges[0].Line != nil {
		t.Errorf("dangling edge should have no line: %+v", doc.Edges)
	}
}
