package graph

import (
	"slices"
	"testing"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/errors"
)

func mk(id string, prereqs, parents []string) block.Block {
	return block.Block{
		ID:            id,
		Title:         block.Title{DE: id, EN: id},
		Prerequisites: prereqs,
		Parents:       parents,
	}
}

func TestBuild_EdgeCount(t *testing.T) {
	tests := []struct {
		name   string
		blocks []block.Block
	}{
		{name: "Empty"},
		{
			name:   "Single",
			blocks: []block.Block{mk("a", nil, nil)},
		},
		{
			name: "Mixed",
			blocks: []block.Block{
				mk("a", nil, nil),
				mk("b", []string{"a"}, nil),
				mk("c", nil, []string{"a"}),
				mk("d", []string{"b", "c"}, []string{"a"}),
			},
		},
		{
			name: "Dangling",
			blocks: []block.Block{
				mk("a", []string{"missing"}, []string{"ghost"}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.blocks)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			want := 0
			for _, b := range tt.blocks {
				want += len(b.Prerequisites) + len(b.Parents)
			}
			if got := len(g.Edges()); got != want {
				t.Errorf("edges = %d, want %d", got, want)
			}
			if g.Len() != len(tt.blocks) {
				t.Errorf("Len() = %d, want %d", g.Len(), len(tt.blocks))
			}
		})
	}
}

func TestBuild_EdgeDirection(t *testing.T) {
	g, err := Build([]block.Block{
		mk("a", nil, nil),
		mk("b", []string{"a"}, nil),
		mk("c", nil, []string{"a"}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []Edge{
		{From: "a", To: "b", Type: Prerequisite},
		{From: "a", To: "c", Type: Parent},
	}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
	if got := g.EdgesOfType(Parent); len(got) != 1 || got[0].To != "c" {
		t.Errorf("EdgesOfType(Parent) = %v", got)
	}
}

func TestBuild_DuplicateIDs(t *testing.T) {
	_, err := Build([]block.Block{
		mk("a", nil, nil),
		mk("b", nil, nil),
		mk("a", nil, nil),
		mk("c", nil, nil),
		mk("c", nil, nil),
	})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Fatalf("error = %v, want DUPLICATE_ID", err)
	}
	if got := errors.DuplicateIDs(err); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("DuplicateIDs = %v, want [a c]", got)
	}
}

func TestBuild_SelfLoop(t *testing.T) {
	_, err := Build([]block.Block{mk("a", []string{"a"}, nil)})
	if !errors.Is(err, errors.ErrCodeSelfLoop) {
		t.Fatalf("error = %v, want SELF_LOOP", err)
	}
}

func TestBuild_ClonesInput(t *testing.T) {
	in := []block.Block{mk("a", []string{"x"}, nil)}
	g, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	in[0].Prerequisites[0] = "changed"

	b, _ := g.Block("a")
	if b.Prerequisites[0] != "x" {
		t.Errorf("graph block mutated through input: %v", b.Prerequisites)
	}
}

func TestBlockGraph_Queries(t *testing.T) {
	g, err := Build([]block.Block{
		mk("math", nil, nil),
		mk("algebra", nil, []string{"math"}),
		mk("geometry", []string{"algebra"}, []string{"math"}),
		mk("proofs", nil, []string{"geometry", "nowhere"}),
		mk("art", nil, nil),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := g.Children("math"); !slices.Equal(got, []string{"algebra", "geometry"}) {
		t.Errorf("Children(math) = %v", got)
	}
	if !g.HasChildren("geometry") || g.HasChildren("art") {
		t.Error("HasChildren mismatch")
	}
	if got := g.ParentsOf("proofs"); !slices.Equal(got, []string{"geometry"}) {
		t.Errorf("ParentsOf(proofs) = %v, want [geometry]", got)
	}
	if got := g.Sources(); !slices.Equal(got, []string{"math", "art"}) {
		t.Errorf("Sources() = %v, want [math art]", got)
	}
	if got := g.TopLevel(); !slices.Equal(got, []string{"math", "art"}) {
		t.Errorf("TopLevel() = %v, want [math art]", got)
	}
	if got := g.Ancestors("proofs"); !slices.Equal(got, []string{"geometry", "math"}) {
		t.Errorf("Ancestors(proofs) = %v, want [geometry math]", got)
	}
	if !g.IsDescendant("proofs", "math") || g.IsDescendant("art", "math") {
		t.Error("IsDescendant mismatch")
	}
	if !g.IsDescendant("math", "math") {
		t.Error("a block is its own descendant")
	}
	if _, ok := g.Block("nowhere"); ok {
		t.Error("dangling id resolved to a block")
	}
	if got := g.IDs(); !slices.Equal(got, []string{"math", "algebra", "geometry", "proofs", "art"}) {
		t.Errorf("IDs() = %v", got)
	}
}

func TestBlockGraph_SourcesIgnoreDanglingEdges(t *testing.T) {
	g, err := Build([]block.Block{
		mk("a", []string{"external"}, nil),
		mk("b", []string{"a"}, nil),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.Sources(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Sources() = %v, want [a]", got)
	}
	if got := g.Index().Prerequisites("a").Len(); got != 0 {
		t.Errorf("index kept dangling prerequisite, len = %d", got)
	}
}

func TestBlockGraph_AncestorsCycle(t *testing.T) {
	g, err := Build([]block.Block{
		mk("a", nil, []string{"b"}),
		mk("b", nil, []string{"a"}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.Ancestors("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Ancestors(a) = %v, want [b]", got)
	}
	if got := g.TopLevel(); len(got) != 0 {
		t.Errorf("TopLevel() = %v, want none", got)
	}
}

func TestBlockGraph_Index(t *testing.T) {
	g, err := Build([]block.Block{
		mk("a", nil, nil),
		mk("b", []string{"a"}, nil),
		mk("c", []string{"a"}, nil),
		mk("d", []string{"b", "c"}, nil),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	all := g.Index().AllPrerequisites("d")
	if got := all.Sorted(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("AllPrerequisites(d) = %v, want [a b c]", got)
	}
}
