// Package relations maintains the prerequisite relationships of a block
// graph as a bidirectional index.
//
// # Overview
//
// An [Index] stores, for every block, the set of blocks it requires
// (prerequisites) and the set of blocks that require it (postrequisites).
// The two maps are mirror images: every insertion and removal updates both,
// so direct lookups in either direction are O(1).
//
// Transitive queries ([Index.AllPrerequisites], [Index.AllPostrequisites],
// [Index.HasPath]) walk the graph depth-first and memoise their result per
// block. Any mutation clears the whole memo table; the index favours a simple
// correct invalidation policy over fine-grained cache maintenance.
//
// # Cycles
//
// Prerequisite data comes from people and may contain cycles. Cycles are not
// errors: [Index.DetectCycles] returns them as data and
// [Index.TopologicalOrder] returns nil when no complete order exists, so a
// caller can still draw a best-effort diagram. Self-loops are the exception:
// [Index.AddRelationship] rejects them.
//
// # Concurrency
//
// An Index is safe for concurrent use. Reads that fill the memo table take
// the same lock as writes, so no reader ever observes a half-built cache.
package relations
