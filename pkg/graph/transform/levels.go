package transform

import "github.com/matzehuels/blockgraph/pkg/graph"

// MaxLevelIterations returns the worklist budget for a graph with n blocks
// and e edges. On acyclic input the walk needs at most n·n steps; the extra
// n·e keeps dense graphs within budget.
func MaxLevelIterations(n, e int) int {
	return n*n + n*e + 1
}

// levelEntry is one pending visit. path links back to the entry that pushed
// it, so membership of the current path is a walk up the chain.
type levelEntry struct {
	id    string
	depth int
	path  *levelEntry
}

func (e *levelEntry) onPath(id string) bool {
	for p := e; p != nil; p = p.path {
		if p.id == id {
			return true
		}
	}
	return false
}

// AssignLevels returns the level of every block in g.
//
// A block's level is the length of the longest path reaching it from a root,
// counting prerequisite and parent edges alike. Blocks no root reaches keep
// level 0. Dangling edges are ignored.
func AssignLevels(g *graph.BlockGraph) map[string]int {
	ids := g.IDs()
	levels := make(map[string]int, len(ids))
	if len(ids) == 0 {
		return levels
	}

	next := make(map[string][]string, len(ids))
	edges := g.Edges()
	for _, e := range edges {
		if g.Has(e.From) && g.Has(e.To) {
			next[e.From] = append(next[e.From], e.To)
		}
	}

	roots := g.Sources()
	if len(roots) == 0 {
		roots = ids
	}

	reached := make(map[string]bool, len(ids))
	budget := MaxLevelIterations(len(ids), len(edges))

	for _, root := range roots {
		stack := []*levelEntry{{id: root}}
		for len(stack) > 0 && budget > 0 {
			budget--
			curr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if reached[curr.id] && curr.depth <= levels[curr.id] {
				continue
			}
			reached[curr.id] = true
			levels[curr.id] = curr.depth

			for _, child := range next[curr.id] {
				if curr.onPath(child) {
					continue
				}
				stack = append(stack, &levelEntry{id: child, depth: curr.depth + 1, path: curr})
			}
		}
	}

	for _, id := range ids {
		if _, ok := levels[id]; !ok {
			levels[id] = 0
		}
	}
	return levels
}

// MaxLevel returns the highest level in levels, or -1 when levels is empty.
func MaxLevel(levels map[string]int) int {
	maxLevel := -1
	for _, l := range levels {
		maxLevel = max(maxLevel, l)
	}
	return maxLevel
}

// ByLevel groups ids by level, keeping the order of ids within each level.
func ByLevel(ids []string, levels map[string]int) [][]string {
	out := make([][]string, MaxLevel(levels)+1)
	for _, id := range ids {
		l, ok := levels[id]
		if !ok {
			continue
		}
		out[l] = append(out[l], id)
	}
	return out
}
