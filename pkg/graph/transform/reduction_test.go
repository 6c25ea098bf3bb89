package transform

import (
	"slices"
	"testing"

	"github.com/matzehuels/blockgraph/pkg/graph"
)

func pre(from, to string) graph.Edge { return graph.Edge{From: from, To: to, Type: graph.Prerequisite} }
func par(from, to string) graph.Edge { return graph.Edge{From: from, To: to, Type: graph.Parent} }

func TestRemoveTransitiveEdges(t *testing.T) {
	tests := []struct {
		name  string
		edges []graph.Edge
		want  []graph.Edge
	}{
		{
			name: "Empty",
			want: []graph.Edge{},
		},
		{
			name:  "Triangle",
			edges: []graph.Edge{pre("A", "B"), pre("B", "C"), pre("A", "C")},
			want:  []graph.Edge{pre("A", "B"), pre("B", "C")},
		},
		{
			name: "DiamondWithShortcut",
			edges: []graph.Edge{
				pre("A", "B"), pre("A", "C"), pre("B", "D"), pre("C", "D"), pre("A", "D"),
			},
			want: []graph.Edge{pre("A", "B"), pre("A", "C"), pre("B", "D"), pre("C", "D")},
		},
		{
			name:  "DiamondKept",
			edges: []graph.Edge{pre("A", "B"), pre("A", "C"), pre("B", "D"), pre("C", "D")},
			want:  []graph.Edge{pre("A", "B"), pre("A", "C"), pre("B", "D"), pre("C", "D")},
		},
		{
			name:  "LongShortcut",
			edges: []graph.Edge{pre("A", "E"), pre("A", "B"), pre("B", "C"), pre("C", "D"), pre("D", "E")},
			want:  []graph.Edge{pre("A", "B"), pre("B", "C"), pre("C", "D"), pre("D", "E")},
		},
		{
			name:  "ParentEdgesUntouched",
			edges: []graph.Edge{par("A", "C"), pre("A", "B"), par("B", "C"), pre("B", "C"), pre("A", "C")},
			want:  []graph.Edge{par("A", "C"), pre("A", "B"), par("B", "C"), pre("B", "C")},
		},
		{
			name:  "ParentPathsDoNotReduce",
			edges: []graph.Edge{par("A", "B"), par("B", "C"), pre("A", "C")},
			want:  []graph.Edge{par("A", "B"), par("B", "C"), pre("A", "C")},
		},
		{
			// A self-loop makes A one of its own other targets, so A→C is
			// found again through A and dropped.
			name:  "SelfLoopQuirk",
			edges: []graph.Edge{pre("A", "A"), pre("A", "C")},
			want:  []graph.Edge{pre("A", "A")},
		},
		{
			name:  "TwoCycleKept",
			edges: []graph.Edge{pre("A", "B"), pre("B", "A")},
			want:  []graph.Edge{pre("A", "B"), pre("B", "A")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.edges)
			got := RemoveTransitiveEdges(tt.edges)
			if !slices.Equal(got, tt.want) {
				t.Errorf("RemoveTransitiveEdges() = %v, want %v", got, tt.want)
			}
			if !slices.Equal(tt.edges, in) {
				t.Error("input slice was modified")
			}
		})
	}
}

func TestReduce(t *testing.T) {
	res := Reduce([]graph.Edge{pre("A", "B"), pre("B", "C"), pre("A", "C")})
	if res.Removed != 1 || len(res.Kept) != 2 {
		t.Errorf("Reduce() = %+v, want 1 removed and 2 kept", res)
	}
}
