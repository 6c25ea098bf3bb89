// Package layout computes 2D rectangles for the blocks of a graph.
//
// # Axes
//
// An [Orientation] maps two abstract axes onto x and y:
//
//   - the level axis, along which levels progress (y for ttb/btt, x for
//     ltr/rtl);
//   - the sibling axis, along which blocks of the same level spread out.
//
// Reversed orientations (btt, rtl) mirror the level axis so that level 0
// sits at the far edge of the diagram.
//
// # Placement
//
// [Compute] walks levels in order. Each level starts at an offset along the
// level axis; a level normally takes one row, or ceil(count/MaxNodesPerLevel)
// rows when wrapping is enabled.
//
// A level where no block has an already positioned prerequisite is laid out
// as a uniform grid. Any other level is laid out by sibling groups: blocks
// that share the same prerequisite signature are spread symmetrically around
// the centroid of their prerequisites ([Distribute]):
//
//	start = centroid − (n·size + (n−1)·spacing)/2
//	pos_i = start + i·(size + spacing)
//
// Finally the level is swept in sibling-axis order and any block closer than
// size+spacing to its predecessor is pushed forward.
//
// # Edges
//
// [ConnectionPoints] returns the anchor points for drawing an edge between two
// positioned rectangles: the centre of the facing sides in the direction of
// level progression.
package layout
