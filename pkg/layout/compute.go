package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/graph"
)

// Compute returns the rectangle of every block in g.
//
// levels gives each block's level; blocks missing from levels are placed at
// level 0. Compute does not validate cfg; call Config.Validate first.
func Compute(g *graph.BlockGraph, levels map[string]int, cfg Config) map[string]Position {
	ax := cfg.axes()
	p := placer{
		g:       g,
		ax:      ax,
		maxRow:  cfg.MaxNodesPerLevel,
		sibling: make(map[string]float64, g.Len()),
		level:   make(map[string]float64, g.Len()),
	}

	var offset float64
	for _, ids := range groupByLevel(g.IDs(), levels) {
		if p.anchored(ids) {
			p.placeGroups(ids, offset)
		} else {
			p.placeGrid(ids, offset)
		}
		offset += float64(Rows(len(ids), cfg.MaxNodesPerLevel)) * (ax.levelSize + ax.levelGap)
	}

	var extent float64
	for _, l := range p.level {
		extent = max(extent, l+ax.levelSize)
	}

	out := make(map[string]Position, len(p.level))
	for id, l := range p.level {
		if cfg.Orientation.IsReversed() {
			l = extent - l - ax.levelSize
		}
		s := p.sibling[id]
		pos := Position{Width: cfg.NodeWidth, Height: cfg.NodeHeight}
		if cfg.Orientation.IsVertical() {
			pos.X, pos.Y = s, l
		} else {
			pos.X, pos.Y = l, s
		}
		out[id] = pos
	}
	return out
}

// Rows returns how many rows a level of count blocks occupies. Zero max
// disables wrapping.
func Rows(count, maxPerLevel int) int {
	if count == 0 {
		return 0
	}
	if maxPerLevel <= 0 {
		return 1
	}
	return (count + maxPerLevel - 1) / maxPerLevel
}

func groupByLevel(ids []string, levels map[string]int) [][]string {
	var out [][]string
	for _, id := range ids {
		l := max(levels[id], 0)
		for len(out) <= l {
			out = append(out, nil)
		}
		out[l] = append(out[l], id)
	}
	return out
}

// placer holds level-axis and sibling-axis start coordinates while levels
// are placed one after another.
type placer struct {
	g       *graph.BlockGraph
	ax      axes
	maxRow  int
	sibling map[string]float64
	level   map[string]float64
}

func (p *placer) rowOffset(row int) float64 {
	return float64(row) * (p.ax.levelSize + p.ax.levelGap)
}

func (p *placer) prerequisites(id string) []string {
	b, ok := p.g.Block(id)
	if !ok {
		return nil
	}
	return b.Prerequisites
}

// anchored reports whether any block in ids has a positioned prerequisite.
func (p *placer) anchored(ids []string) bool {
	for _, id := range ids {
		for _, pre := range p.prerequisites(id) {
			if _, ok := p.sibling[pre]; ok {
				return true
			}
		}
	}
	return false
}

func (p *placer) placeGrid(ids []string, offset float64) {
	step := p.ax.siblingSize + p.ax.siblingGap
	for i, id := range ids {
		row, col := 0, i
		if p.maxRow > 0 {
			row, col = i/p.maxRow, i%p.maxRow
		}
		p.sibling[id] = float64(col) * step
		p.level[id] = offset + p.rowOffset(row)
	}
}

// centroid returns the mean sibling-axis centre of id's positioned
// prerequisites.
func (p *placer) centroid(id string) (float64, bool) {
	var sum float64
	var n int
	for _, pre := range p.prerequisites(id) {
		if s, ok := p.sibling[pre]; ok {
			sum += s + p.ax.siblingSize/2
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func (p *placer) placeGroups(ids []string, offset float64) {
	size, gap := p.ax.siblingSize, p.ax.siblingGap
	desired := make(map[string]float64, len(ids))
	for _, grp := range SiblingGroups(ids, p.g) {
		n := len(grp.Members)
		c, ok := p.centroid(grp.Members[0])
		if !ok {
			c = Span(n, size, gap) / 2
		}
		for i, s := range Distribute(n, size, gap, c) {
			desired[grp.Members[i]] = s
		}
	}

	order := slices.Clone(ids)
	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(desired[a], desired[b])
	})

	chunk := len(order)
	if p.maxRow > 0 {
		chunk = p.maxRow
	}
	for row := 0; row*chunk < len(order); row++ {
		var prev float64
		for i, id := range order[row*chunk : min((row+1)*chunk, len(order))] {
			s := desired[id]
			if i > 0 && s < prev+size+gap {
				s = prev + size + gap
			}
			p.sibling[id] = s
			p.level[id] = offset + p.rowOffset(row)
			prev = s
		}
	}
}

// Positioned pairs a block with its level and rectangle.
type Positioned struct {
	Block    block.Block
	Level    int
	Position Position
}

// Pair joins blocks with their positions, ordered by level and then by
// position along the sibling axis of o. Blocks without a position are
// skipped.
func Pair(g *graph.BlockGraph, levels map[string]int, positions map[string]Position, o Orientation) []Positioned {
	out := make([]Positioned, 0, len(positions))
	for _, b := range g.Blocks() {
		pos, ok := positions[b.ID]
		if !ok {
			continue
		}
		out = append(out, Positioned{Block: b, Level: levels[b.ID], Position: pos})
	}

	sib := func(p Position) float64 { return p.X }
	lvl := func(p Position) float64 { return p.Y }
	if !o.IsVertical() {
		sib, lvl = lvl, sib
	}
	slices.SortStableFunc(out, func(a, b Positioned) int {
		return cmp.Or(
			cmp.Compare(a.Level, b.Level),
			cmp.Compare(lvl(a.Position), lvl(b.Position)),
			cmp.Compare(sib(a.Position), sib(b.Position)),
		)
	})
	return out
}
