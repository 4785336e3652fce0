// Package hierarchy converts catalog trees into weighted hierarchies ready
// for radial partitioning.
//
// A [Hierarchy] is an arena: nodes live in one slice and refer to each other
// by [NodeID], the node's index. The root is always node 0 and nodes are
// stored in depth-first insertion order, so iterating the arena visits a
// category immediately before its tools.
//
// Each node carries a closed variant describing what it is:
//
//	switch item := n.Item.(type) {
//	case hierarchy.Root:
//	case hierarchy.Category:
//	case hierarchy.Tool:
//	}
//
// The shape is fixed at two levels below the root. A tree that violates it
// is rejected with a *[MalformedCatalogError].
//
// # Weights
//
// A tool's weight is its popularity. Missing, zero, negative or non-finite
// popularity defaults to 1 so that no arc is ever degenerate. Categories and
// the root weigh the sum of their children. Weights are computed once at
// build time and never change.
package hierarchy
