// Package pipeline runs the complete block layout pipeline.
//
// This package chains the building blocks of blockgraph so the CLI and
// library callers get the same behavior from one entry point:
//
//  1. Build: validate the batch and derive the edge graph
//  2. Levels: assign a level to every block
//  3. Reduce: optionally drop transitive edges
//  4. Position: compute a rectangle per block
//  5. Categorize: split blocks into visible, dimmed and hidden for a selection
//  6. Diagnose: report cycles, a topological order and dangling edges
//
// Stages 2 to 4 and 6 depend only on the blocks and the layout options, so
// their output is memoised in a [cache.Cache]. Categorization is cheap and
// always recomputed, which lets one cached layout serve every selection.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	result, err := runner.Layout(ctx, blocks, pipeline.Options{
//	    Layout:   layout.DefaultConfig(),
//	    Reduce:   true,
//	    Selected: "algebra",
//	})
//	if err != nil {
//	    return err
//	}
//	doc := result.Document()
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockgraph/pkg/cache"
	"github.com/matzehuels/blockgraph/pkg/graph"
	blockio "github.com/matzehuels/blockgraph/pkg/io"
	"github.com/matzehuels/blockgraph/pkg/layout"
	"github.com/matzehuels/blockgraph/pkg/navigation"
)

// Options configures one pipeline run.
type Options struct {
	// Layout holds block sizes, gaps and orientation. The zero value is
	// replaced by layout.DefaultConfig().
	Layout layout.Config

	// Reduce removes transitive prerequisite edges before positioning.
	Reduce bool

	// Selected is the drill-down selection used for categorization. Empty
	// means the root view.
	Selected string

	// Refresh bypasses the cache lookup. The fresh result is still stored.
	Refresh bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// ValidateAndSetDefaults fills the zero layout config and validates it.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Layout == (layout.Config{}) {
		o.Layout = layout.DefaultConfig()
	}
	if o.Layout.Orientation == "" {
		o.Layout.Orientation = layout.TopToBottom
	}
	return o.Layout.Validate()
}

// LayoutKeyOpts returns the options that go into the layout cache key.
func (o Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Orientation:       o.Layout.Orientation.String(),
		NodeWidth:         o.Layout.NodeWidth,
		NodeHeight:        o.Layout.NodeHeight,
		HorizontalSpacing: o.Layout.HorizontalSpacing,
		VerticalSpacing:   o.Layout.VerticalSpacing,
		MaxNodesPerLevel:  o.Layout.MaxNodesPerLevel,
		Reduce:            o.Reduce,
	}
}

// Result is the output of one pipeline run.
type Result struct {
	Graph       *graph.BlockGraph
	BlocksHash  string
	Options     Options
	Levels      map[string]int
	Edges       []graph.Edge // edges after optional reduction
	Positions   map[string]layout.Position
	Categories  navigation.Categorized
	Diagnostics blockio.Diagnostics
	Stats       Stats
	CacheHit    bool
}

// Stats holds counts and timings of a run.
type Stats struct {
	BlockCount int
	EdgeCount  int
	LevelCount int
	BuildTime  time.Duration
	LayoutTime time.Duration
}

// Document converts the result into its serialized form. Positions are
// shifted so the diagram's top-left corner is at the origin.
func (r *Result) Document() *blockio.LayoutDocument {
	o := r.Options.Layout.Orientation
	bounds := layout.Bounds(r.Positions)
	positions := layout.Translate(r.Positions, -bounds.X, -bounds.Y)

	doc := &blockio.LayoutDocument{
		Orientation: o,
		Width:       bounds.Width,
		Height:      bounds.Height,
		Selected:    r.Options.Selected,
		Blocks:      []blockio.PositionedBlock{},
		Edges:       make([]blockio.LayoutEdge, 0, len(r.Edges)),
		Diagnostics: r.Diagnostics,
	}
	for _, p := range layout.Pair(r.Graph, r.Levels, positions, o) {
		id := p.Block.ID
		doc.Blocks = append(doc.Blocks, blockio.PositionedBlock{
			Block:    p.Block,
			Level:    p.Level,
			Position: p.Position,
			Visible:  r.Categories.Visible.Has(id),
			Dimmed:   r.Categories.Dimmed.Has(id),
		})
	}
	for _, e := range r.Edges {
		le := blockio.LayoutEdge{From: e.From, To: e.To, Type: e.Type}
		from, okFrom := positions[e.From]
		to, okTo := positions[e.To]
		if okFrom && okTo {
			line := layout.ConnectionPoints(from, to, o)
			le.Line = &line
		}
		doc.Edges = append(doc.Edges, le)
	}
	return doc
}
