package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/graph"
	blockio "github.com/matzehuels/blockgraph/pkg/io"
)

// DefaultDimColor fills dimmed blocks when Options.DimColor is empty.
const DefaultDimColor = "#d3d3d3"

const pointsPerInch = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the block id, level and extension fields to labels.
	// When false, only the title is shown.
	Detailed bool

	// DimColor fills dimmed blocks.
	DimColor string

	// Language selects the title language ("de" or "en").
	Language string
}

// ToDOT converts a layout document to Graphviz DOT with pinned node
// positions. The result is meant for the neato engine; [RenderSVG] selects it.
func ToDOT(doc *blockio.LayoutDocument, opts Options) string {
	dim := opts.DimColor
	if dim == "" {
		dim = DefaultDimColor
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, fixedsize=true];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n")
	buf.WriteString("\n")

	drawn := make(map[string]bool, len(doc.Blocks))
	for _, b := range doc.Blocks {
		if !b.Visible && !b.Dimmed {
			continue
		}
		drawn[b.Block.ID] = true
		attrs := fmtAttrs(b, doc.Height, fmtLabel(b, opts))
		if b.Dimmed {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", dim), "fontcolor=gray40", "color=gray60")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", b.Block.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range doc.Edges {
		if !drawn[e.From] || !drawn[e.To] {
			continue
		}
		if e.Type == graph.Parent {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(b blockio.PositionedBlock, opts Options) string {
	title := b.Block.Title.In(opts.Language)
	if !opts.Detailed {
		return title
	}

	parts := []string{
		fmt.Sprintf("id: %s", b.Block.ID),
		fmt.Sprintf("level: %d", b.Level),
	}
	if ext := b.Block.Extensions; ext != nil {
		for k, v := range ext.All() {
			parts = append(parts, fmt.Sprintf("%s: %s", k, block.FormatValue(v)))
		}
	}
	return title + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(b blockio.PositionedBlock, height float64, label string) []string {
	p := b.Position
	x := p.CenterX()
	y := height - p.CenterY()
	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(x), fmtFloat(y)),
		"width=" + strconv.FormatFloat(p.Width/pointsPerInch, 'f', 4, 64),
		"height=" + strconv.FormatFloat(p.Height/pointsPerInch, 'f', 4, 64),
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag with one whose size matches its
// viewBox, so the diagram scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
