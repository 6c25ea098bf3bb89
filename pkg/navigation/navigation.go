package navigation

import (
	"github.com/matzehuels/blockgraph/pkg/graph"
	"github.com/matzehuels/blockgraph/pkg/graph/relations"
)

// State is the current drill-down selection. The zero value is the root view.
type State struct {
	SelectedID string `json:"selected_id,omitempty"`
}

// IsRoot reports whether nothing is selected.
func (s State) IsRoot() bool { return s.SelectedID == "" }

// Categorized partitions blocks for rendering. Blocks in neither set are
// hidden.
type Categorized struct {
	Visible relations.Set
	Dimmed  relations.Set
}

// Event is the outcome of a click.
type Event int

const (
	// EventIgnored means the clicked id is not a block of the graph.
	EventIgnored Event = iota
	// EventLeafSelected means a block without children was clicked.
	EventLeafSelected
	// EventOpened means a block with children became the selection.
	EventOpened
	// EventClosed means the open block was clicked again.
	EventClosed
)

var eventNames = [...]string{"ignored", "leaf-selected", "opened", "closed"}

// String implements fmt.Stringer.
func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// AutoSkippedRoot returns the block skipped by the root view: the graph's
// only root, provided it has children.
func AutoSkippedRoot(g *graph.BlockGraph) (string, bool) {
	roots := g.Sources()
	if len(roots) == 1 && g.HasChildren(roots[0]) {
		return roots[0], true
	}
	return "", false
}

// Categorize returns the visible and dimmed blocks for state. A selection
// that names no block is treated as the root view.
func Categorize(g *graph.BlockGraph, state State) Categorized {
	skipped, hasSkip := AutoSkippedRoot(g)

	if state.IsRoot() || !g.Has(state.SelectedID) {
		if hasSkip {
			return Categorized{Visible: relations.SetOf(g.Children(skipped)...)}
		}
		return Categorized{Visible: relations.SetOf(g.TopLevel()...)}
	}

	sel := state.SelectedID
	hideSkipped := hasSkip && g.IsDescendant(sel, skipped)

	visible := append([]string{sel}, g.Children(sel)...)
	if hideSkipped {
		visible = without(visible, skipped)
	}
	vis := relations.SetOf(visible...)

	var dimmed []string
	for _, id := range g.TopLevel() {
		if id == sel || vis.Has(id) {
			continue
		}
		if hideSkipped && id == skipped {
			continue
		}
		dimmed = append(dimmed, id)
	}
	return Categorized{Visible: vis, Dimmed: relations.SetOf(dimmed...)}
}

// Click applies a click on id to state.
func Click(g *graph.BlockGraph, state State, id string) (State, Event) {
	switch {
	case !g.Has(id):
		return state, EventIgnored
	case !g.HasChildren(id):
		return state, EventLeafSelected
	case state.SelectedID == id:
		return State{}, EventClosed
	default:
		return State{SelectedID: id}, EventOpened
	}
}

func without(ids []string, drop string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
