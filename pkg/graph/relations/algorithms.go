package relations

import "slices"

// DetectCycles returns every cycle found by a depth-first search over the
// prerequisite → dependent direction, or nil when the index is acyclic.
//
// Each cycle is an ordered vertex list [v, ..., u] where u → v is the back
// edge that closed it. The search uses white/gray/black coloring: meeting a
// gray node means the current DFS path loops back on itself, and the cycle is
// recovered by walking parent pointers from u up to v. Roots are visited in
// registration order and neighbours in ascending id order, so the result is
// deterministic.
func (x *Index) DetectCycles() [][]string {
	x.mu.Lock()
	defer x.mu.Unlock()

	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(x.order))
	parent := make(map[string]string, len(x.order))
	var cycles [][]string

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, next := range sortedKeys(x.postrequisites[id]) {
			switch color[next] {
			case white:
				parent[next] = id
				dfs(next)
			case gray:
				cycles = append(cycles, unwind(parent, id, next))
			}
		}
		color[id] = black
	}

	for _, id := range x.order {
		if color[id] == white {
			dfs(id)
		}
	}
	return cycles
}

// unwind rebuilds the cycle closed by the back edge from → to.
func unwind(parent map[string]string, from, to string) []string {
	cycle := []string{from}
	for curr := from; curr != to; {
		curr = parent[curr]
		cycle = append(cycle, curr)
	}
	slices.Reverse(cycle)
	return cycle
}

// TopologicalOrder returns every registered block ordered so that each block
// comes after all of its prerequisites, or nil when a cycle prevents a
// complete order.
//
// It runs Kahn's algorithm on in-degree counts over prerequisite
// relationships. Blocks without prerequisites are seeded in registration
// order; released dependents are queued in ascending id order.
func (x *Index) TopologicalOrder() []string {
	x.mu.Lock()
	defer x.mu.Unlock()

	inDegree := make(map[string]int, len(x.order))
	queue := make([]string, 0, len(x.order))
	for _, id := range x.order {
		degree := len(x.prerequisites[id])
		inDegree[id] = degree
		if degree == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(x.order))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)

		for _, next := range sortedKeys(x.postrequisites[curr]) {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) < len(x.order) {
		return nil
	}
	return order
}
