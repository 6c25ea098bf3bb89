package graph

import (
	"slices"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/errors"
	"github.com/matzehuels/blockgraph/pkg/graph/relations"
)

// EdgeType distinguishes the two relationships a block can declare.
type EdgeType string

const (
	// Prerequisite edges point from a required block to the block requiring it.
	Prerequisite EdgeType = "prerequisite"
	// Parent edges point from a containing block to its child.
	Parent EdgeType = "parent"
)

// String implements fmt.Stringer.
func (t EdgeType) String() string { return string(t) }

// Edge is a directed relationship between two block ids.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Type EdgeType `json:"type"`
}

// BlockGraph is the immutable edge graph of a block batch.
//
// The zero value is not usable; create one with Build.
type BlockGraph struct {
	blocks []block.Block
	byID   map[string]int
	edges  []Edge

	children map[string][]string // parent edges, resolved endpoints only
	incoming map[string]int      // resolved incoming edges of either type

	index *relations.Index
}

// Build creates a BlockGraph from blocks.
//
// Blocks are cloned, so later changes to the input do not affect the graph.
// Build returns an error with code DUPLICATE_ID listing every repeated id, or
// SELF_LOOP when a block lists itself as a prerequisite.
func Build(blocks []block.Block) (*BlockGraph, error) {
	if dups := block.DuplicateIDs(blocks); dups != nil {
		return nil, errors.Wrap(errors.ErrCodeDuplicateID, &errors.DuplicateIDError{IDs: dups},
			"%d block ids appear more than once", len(dups))
	}

	g := &BlockGraph{
		blocks:   block.CloneAll(blocks),
		byID:     make(map[string]int, len(blocks)),
		children: make(map[string][]string),
		incoming: make(map[string]int),
		index:    relations.New(),
	}
	for i, b := range g.blocks {
		g.byID[b.ID] = i
		g.index.AddBlock(b.ID)
	}

	for _, b := range g.blocks {
		for _, p := range b.Prerequisites {
			g.edges = append(g.edges, Edge{From: p, To: b.ID, Type: Prerequisite})
			if !g.Has(p) {
				continue
			}
			g.incoming[b.ID]++
			if err := g.index.AddRelationship(p, b.ID); err != nil {
				return nil, err
			}
		}
		for _, p := range b.Parents {
			g.edges = append(g.edges, Edge{From: p, To: b.ID, Type: Parent})
			if !g.Has(p) {
				continue
			}
			g.incoming[b.ID]++
			g.children[p] = append(g.children[p], b.ID)
		}
	}
	return g, nil
}

// Len returns the number of blocks.
func (g *BlockGraph) Len() int { return len(g.blocks) }

// Has reports whether id names a block in the graph.
func (g *BlockGraph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Block returns a copy of the block with the given id.
func (g *BlockGraph) Block(id string) (block.Block, bool) {
	i, ok := g.byID[id]
	if !ok {
		return block.Block{}, false
	}
	return g.blocks[i].Clone(), true
}

// Blocks returns copies of all blocks in input order.
func (g *BlockGraph) Blocks() []block.Block { return block.CloneAll(g.blocks) }

// IDs returns all block ids in input order.
func (g *BlockGraph) IDs() []string {
	ids := make([]string, len(g.blocks))
	for i, b := range g.blocks {
		ids[i] = b.ID
	}
	return ids
}

// Edges returns a copy of every edge, dangling ones included, in the order
// they were declared.
func (g *BlockGraph) Edges() []Edge { return slices.Clone(g.edges) }

// EdgesOfType returns the edges of type t in declaration order.
func (g *BlockGraph) EdgesOfType(t EdgeType) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Children returns the blocks that list id as a parent, in input order.
func (g *BlockGraph) Children(id string) []string { return slices.Clone(g.children[id]) }

// HasChildren reports whether any block lists id as a parent.
func (g *BlockGraph) HasChildren(id string) bool { return len(g.children[id]) > 0 }

// ParentsOf returns the resolved parents of id.
func (g *BlockGraph) ParentsOf(id string) []string {
	i, ok := g.byID[id]
	if !ok {
		return nil
	}
	var out []string
	for _, p := range g.blocks[i].Parents {
		if g.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Sources returns the blocks with no resolved incoming edge of either type,
// in input order. These are the roots of the graph.
func (g *BlockGraph) Sources() []string {
	var out []string
	for _, b := range g.blocks {
		if g.incoming[b.ID] == 0 {
			out = append(out, b.ID)
		}
	}
	return out
}

// TopLevel returns the blocks with no resolved parent, in input order.
func (g *BlockGraph) TopLevel() []string {
	var out []string
	for _, b := range g.blocks {
		if len(g.ParentsOf(b.ID)) == 0 {
			out = append(out, b.ID)
		}
	}
	return out
}

// Ancestors returns every block reachable from id by walking parent links
// upwards, nearest first. Cycles in the parent chain are visited once.
func (g *BlockGraph) Ancestors(id string) []string {
	seen := map[string]bool{id: true}
	queue := g.ParentsOf(id)
	var out []string
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if seen[curr] {
			continue
		}
		seen[curr] = true
		out = append(out, curr)
		queue = append(queue, g.ParentsOf(curr)...)
	}
	return out
}

// IsDescendant reports whether id equals ancestor or lies in its parent
// subtree.
func (g *BlockGraph) IsDescendant(id, ancestor string) bool {
	return id == ancestor || slices.Contains(g.Ancestors(id), ancestor)
}

// Index returns the relationship index over resolved prerequisite edges.
func (g *BlockGraph) Index() *relations.Index { return g.index }
