package transform

import "github.com/matzehuels/blockgraph/pkg/graph"

// ReductionResult reports what RemoveTransitiveEdges did.
type ReductionResult struct {
	// Kept is the surviving edge list in input order.
	Kept []graph.Edge
	// Removed counts the prerequisite edges dropped as redundant.
	Removed int
}

// Reduce performs transitive reduction and reports how many edges it removed.
func Reduce(edges []graph.Edge) ReductionResult {
	kept := RemoveTransitiveEdges(edges)
	return ReductionResult{Kept: kept, Removed: len(edges) - len(kept)}
}

// RemoveTransitiveEdges returns edges without the prerequisite edges that
// duplicate an indirect prerequisite path.
//
// For each prerequisite edge A→C, a breadth-first search starts from every
// direct prerequisite target of A except C; if it reaches C, the edge is
// redundant. Parent edges are returned unchanged and in place. The input
// slice is not modified.
func RemoveTransitiveEdges(edges []graph.Edge) []graph.Edge {
	next := make(map[string][]string)
	for _, e := range edges {
		if e.Type == graph.Prerequisite {
			next[e.From] = append(next[e.From], e.To)
		}
	}

	out := make([]graph.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Type == graph.Prerequisite && reachableAvoiding(next, e.From, e.To) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// reachableAvoiding reports whether target is reachable from the direct
// targets of from other than target itself.
func reachableAvoiding(next map[string][]string, from, target string) bool {
	visited := make(map[string]bool)
	var queue []string
	for _, n := range next[from] {
		if n != target && !visited[n] {
			visited[n] = true
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range next[curr] {
			if n == target {
				return true
			}
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}
