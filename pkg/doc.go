// Package pkg provides the core libraries for blockgraph.
//
// # Overview
//
// Blockgraph arranges blocks (courses, modules, topics) connected by two
// kinds of relationship into a levelled diagram: a block sits below the
// blocks it requires, and blocks sharing a parent can be explored one level
// of the hierarchy at a time. The pkg directory is organized into these
// areas:
//
//  1. [block] - The block model and its JSON/YAML codecs
//  2. [graph] - Edge graph, relationship index and graph transformations
//  3. [layout] - Level-based positioning in four orientations
//  4. [navigation] - Drill-down selection and visible/dimmed categorization
//  5. [pipeline] - Orchestration (build → levels → reduce → position → categorize)
//
// # Architecture
//
// The typical data flow through blockgraph:
//
//	Block file (JSON/YAML)
//	         ↓
//	    [io] package (decode + validate blocks)
//	         ↓
//	    [graph] package (edges, children, relationship index)
//	         ↓
//	    [graph/transform] package (levels, transitive reduction)
//	         ↓
//	    [layout] package (rectangles per block)
//	         ↓
//	    [navigation] package (visible / dimmed / hidden)
//	         ↓
//	    Layout JSON, DOT or SVG output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/blockgraph/pkg/cache"
//	    "github.com/matzehuels/blockgraph/pkg/io"
//	    "github.com/matzehuels/blockgraph/pkg/pipeline"
//	    "github.com/matzehuels/blockgraph/pkg/render/nodelink"
//	)
//
//	// 1. Read blocks
//	blocks, _ := io.ImportBlocks("curriculum.yaml")
//
//	// 2. Lay them out
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, nil)
//	result, _ := runner.Layout(context.Background(), blocks, pipeline.Options{Reduce: true})
//
//	// 3. Render to SVG
//	dot := nodelink.ToDOT(result.Document(), nodelink.Options{Language: "en"})
//	svg, _ := nodelink.RenderSVG(context.Background(), dot)
//
// # Main Packages
//
// ## Domain Logic
//
// [block] - Blocks with a localized title, prerequisite and parent ids, and
// an ordered bag of extension fields carried through unchanged.
//
// [graph] - Immutable edge graph built from a block batch. Duplicate ids and
// self-prerequisites are rejected; references to unknown blocks are kept as
// dangling edges and otherwise ignored.
//
// [graph/relations] - Thread-safe prerequisite index with memoised
// transitive closures, cycle detection and topological ordering.
//
// [graph/transform] - Level assignment (longest prerequisite path, safe on
// cycles) and transitive edge reduction.
//
// [layout] - Sibling-group-aware positioning with optional level wrapping,
// connection points and orientation handling.
//
// [navigation] - Root and drill-down views, click handling and a breadcrumb
// navigator.
//
// ## Infrastructure
//
// [pipeline] - Complete layout pipeline used by the CLI, memoised in [cache].
//
// [cache] - In-process layout cache with TTL, keyed by a hash of the input.
//
// [config] - TOML settings for layout and rendering.
//
// [observability] - Hooks for build, layout, categorization and cache events.
//
// [errors] - Coded errors shared by every package.
//
// ## Serialization and Output
//
// [io] - Block file import and layout document export.
//
// [render/nodelink] - Graphviz DOT with pinned positions, rendered to SVG.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/graph/...      # Specific package
//	go test -run Example ./...   # Examples only
package pkg
