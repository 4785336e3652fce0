// Package layout computes the radial partition of a hierarchy and the
// re-normalized layout used when zooming onto a node.
//
// Angles are in radians, measured clockwise from twelve o'clock, and span
// [0, 2π]. The disc of radius R is divided into MaxDepth+1 concentric rings
// of equal height: the root occupies the centre circle, categories the
// middle ring and tools the outer ring.
//
// [Partition] gives every node an [Arc] whose angular span is proportional
// to its weight within its parent's span. Sibling order follows insertion
// order; nothing is re-sorted. [Layout.Target] re-maps every arc into the
// frame of a focal node.
package layout
