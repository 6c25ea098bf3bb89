// Package graph builds the typed edge graph of a block list.
//
// # Overview
//
// A [BlockGraph] is built once from a []block.Block by [Build] and is
// read-only afterwards. Every block contributes one edge per entry in its
// prerequisites and parents lists, always pointing from the referenced block
// to the block that references it:
//
//	algebra: prerequisites [arithmetic]   →  arithmetic ─prerequisite→ algebra
//	algebra: parents       [mathematics]  →  mathematics ─parent→ algebra
//
// Two edge types share one graph:
//
//   - [Prerequisite] edges express "must be learned before" and drive level
//     assignment, transitive reduction and cycle diagnostics.
//   - [Parent] edges express containment and drive drill-down navigation.
//
// Referenced ids are not validated. An edge may name a block that is not part
// of the batch; such dangling edges are kept in [BlockGraph.Edges] so callers
// see exactly what the input said, but they never resolve to a block and are
// ignored by [BlockGraph.Children], [BlockGraph.Sources] and the
// relationship index.
//
// # Relationship Index
//
// Build also constructs a [relations.Index] over the resolved prerequisite
// edges. It answers direct and transitive prerequisite queries and reports
// cycles and a topological order. See package relations.
//
// # Errors
//
// Build fails fast, before any graph exists, when the batch contains duplicate
// ids. The error has code DUPLICATE_ID and carries every offending id:
//
//	g, err := graph.Build(blocks)
//	if ids := errors.DuplicateIDs(err); ids != nil {
//	    // report ids
//	}
//
// A block listing itself as a prerequisite is rejected with code SELF_LOOP.
// Cycles between distinct blocks are not errors.
//
// # Concurrency
//
// A BlockGraph is safe for concurrent reads. Its relationship index guards
// its own memo table.
package graph
