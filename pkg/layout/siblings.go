package layout

import (
	"slices"
	"strings"

	"github.com/matzehuels/blockgraph/pkg/graph"
)

// SiblingGroup is a set of same-level blocks with identical prerequisites.
type SiblingGroup struct {
	// Signature is the sorted, comma-joined prerequisite list shared by
	// every member.
	Signature string
	Members   []string
}

// Signature returns the sibling signature of a prerequisite list.
func Signature(prereqs []string) string {
	return strings.Join(slices.Sorted(slices.Values(prereqs)), ",")
}

// SiblingGroups partitions the blocks of one level by prerequisite
// signature. Groups appear in order of their first member and members keep
// their order in level. Ids missing from g form a group with an empty
// signature.
func SiblingGroups(level []string, g *graph.BlockGraph) []SiblingGroup {
	var groups []SiblingGroup
	bySig := make(map[string]int)
	for _, id := range level {
		var sig string
		if b, ok := g.Block(id); ok {
			sig = Signature(b.Prerequisites)
		}
		i, ok := bySig[sig]
		if !ok {
			i = len(groups)
			bySig[sig] = i
			groups = append(groups, SiblingGroup{Signature: sig})
		}
		groups[i].Members = append(groups[i].Members, id)
	}
	return groups
}

// Span returns the sibling-axis length of n blocks of the given size laid
// out with spacing between them.
func Span(n int, size, spacing float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*size + float64(n-1)*spacing
}

// Distribute returns the start coordinates of n blocks centred on centroid:
//
//	centroid − n·size/2 − (n−1)·spacing/2 + i·(size+spacing)
func Distribute(n int, size, spacing, centroid float64) []float64 {
	start := centroid - Span(n, size, spacing)/2
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*(size+spacing)
	}
	return out
}
