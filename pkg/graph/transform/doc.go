// Package transform derives layout inputs from a block graph.
//
// # Level Assignment
//
// [AssignLevels] gives every block a level: its longest-path depth from the
// roots of the graph, following edges of both types. Roots are the blocks
// with no incoming edge ([graph.BlockGraph.Sources]); when every block has an
// incoming edge, as in a graph that is one big cycle, every block is treated
// as a root.
//
// Levels are computed with an explicit worklist rather than recursion, so
// deep chains cannot overflow the stack. Each worklist entry carries its own
// path, and a block already on the path is not entered again, so cyclic input
// terminates with finite levels. An iteration cap bounds the total work.
//
// # Transitive Reduction
//
// [RemoveTransitiveEdges] drops prerequisite edges that are implied by a
// longer prerequisite path. If A→B, B→C and A→C all exist, A→C is redundant:
//
//	Before: A→B, B→C, A→C
//	After:  A→B, B→C
//
// Diamonds are not transitive: with A→B, A→C, B→D and C→D every edge is the
// only path between its endpoints, so all four are kept. Parent edges are
// never touched.
//
// Reduction looks at each edge A→C on its own and asks whether C is reachable
// from A's other direct targets. A self-loop A→A therefore makes every other
// edge leaving A look redundant, because A is one of its own "other" targets.
// This is kept as-is and covered by tests; callers that care should reject
// self-loops first, as [graph.Build] does.
package transform
