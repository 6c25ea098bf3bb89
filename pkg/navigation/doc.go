// Package navigation decides which blocks are shown for a drill-down
// selection.
//
// # Views
//
// With nothing selected the root view shows the top-level blocks, those
// without a parent. A graph whose only root (a block with no incoming edge
// of any type) has children is treated specially: that root is auto-skipped,
// its children are shown instead, and the root itself is neither visible nor
// dimmed. See [AutoSkippedRoot].
//
// With a block selected the drill view shows the block and its direct
// children. Every other top-level block is dimmed, except the auto-skipped
// root while the selection lies in its subtree; it stays hidden, even when it
// is the selection itself.
//
// # Transitions
//
// [Click] implements the state machine. Clicking a leaf reports
// [EventLeafSelected] and leaves the state alone. Clicking a block with
// children opens it, or returns to the root view when it is already open.
//
// [Navigator] extends this to arbitrary depth with a breadcrumb trail and
// [Navigator.Back]. The single-selection rules above hold at every step.
package navigation
