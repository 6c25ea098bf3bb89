package navigation

import (
	"slices"

	"github.com/matzehuels/blockgraph/pkg/graph"
)

// Navigator tracks a breadcrumb trail of opened blocks so a browser can
// drill down more than one level and step back out again.
type Navigator struct {
	g     *graph.BlockGraph
	trail []string
}

// NewNavigator starts at the root view of g.
func NewNavigator(g *graph.BlockGraph) *Navigator {
	return &Navigator{g: g}
}

// State returns the current selection.
func (n *Navigator) State() State {
	if len(n.trail) == 0 {
		return State{}
	}
	return State{SelectedID: n.trail[len(n.trail)-1]}
}

// Categorize categorizes the graph for the current selection.
func (n *Navigator) Categorize() Categorized {
	return Categorize(n.g, n.State())
}

// Click applies a click on id. Opening pushes id onto the trail, or cuts the
// trail back to id when it was opened earlier; closing the open block pops
// back to the previous one.
func (n *Navigator) Click(id string) Event {
	_, ev := Click(n.g, n.State(), id)
	switch ev {
	case EventOpened:
		if i := slices.Index(n.trail, id); i >= 0 {
			n.trail = n.trail[:i+1]
			break
		}
		n.trail = append(n.trail, id)
	case EventClosed:
		n.trail = n.trail[:len(n.trail)-1]
	}
	return ev
}

// Back pops the current selection. It reports false at the root view.
func (n *Navigator) Back() bool {
	if len(n.trail) == 0 {
		return false
	}
	n.trail = n.trail[:len(n.trail)-1]
	return true
}

// Reset returns to the root view.
func (n *Navigator) Reset() { n.trail = nil }

// Trail returns the opened blocks, outermost first.
func (n *Navigator) Trail() []string { return slices.Clone(n.trail) }

// Depth returns the number of opened blocks.
func (n *Navigator) Depth() int { return len(n.trail) }
