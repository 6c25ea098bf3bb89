// Package nodelink renders computed block layouts as node-link diagrams.
//
// # Overview
//
// Blocks appear as rounded boxes at the rectangles computed by
// [layout.Compute]; prerequisite edges are drawn as arrows and parent edges
// as dashed lines. Graphviz is used only to draw: every node carries a
// pinned pos attribute, so the neato engine keeps the computed geometry
// instead of running its own layout.
//
// # Usage
//
// Convert a layout document to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(result.Document(), nodelink.Options{Language: "en"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Visibility
//
// Visible blocks are drawn normally, dimmed blocks are filled with
// [Options.DimColor], and hidden blocks are omitted together with every edge
// that touches them.
//
// # Coordinates
//
// Layout coordinates grow downwards while Graphviz coordinates grow upwards.
// [ToDOT] flips the y axis against the document height and uses one point
// per layout unit.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
