package layout

import "github.com/matzehuels/toolverse/pkg/hierarchy"

// Layout holds the absolute arc of every node, indexed by NodeID.
type Layout struct {
	Radius     float64
	RingHeight float64
	Arcs       []Arc
}

// Partition lays out h on a disc of the given outer radius.
//
// The root spans the full circle. Each child receives the share of its
// parent's span given by its weight over the parent's weight; the last
// child's end is pinned to the parent's end so children tile the parent
// exactly.
func Partition(h *hierarchy.Hierarchy, radius float64) *Layout {
	ring := radius / (hierarchy.MaxDepth + 1)
	l := &Layout{
		Radius:     radius,
		RingHeight: ring,
		Arcs:       make([]Arc, h.Len()),
	}
	l.Arcs[hierarchy.RootID] = Arc{AngleStart: 0, AngleEnd: FullCircle, RadiusInner: 0, RadiusOuter: ring}

	// The arena is in depth-first order, so parents are placed before
	// their children.
	for _, n := range h.Nodes() {
		if n.IsLeaf() {
			continue
		}
		p := l.Arcs[n.ID]
		span := p.Width()
		start := p.AngleStart
		var cum float64
		for i, cid := range n.Children {
			child := h.Node(cid)
			cum += child.Weight
			end := p.AngleStart + span*(cum/n.Weight)
			if i == len(n.Children)-1 {
				end = p.AngleEnd
			}
			l.Arcs[cid] = Arc{
				AngleStart:  start,
				AngleEnd:    end,
				RadiusInner: float64(child.Depth) * ring,
				RadiusOuter: float64(child.Depth+1) * ring,
			}
			start = end
		}
	}
	return l
}

// Clone returns a copy of the arcs.
func (l *Layout) Clone() []Arc {
	return append([]Arc(nil), l.Arcs...)
}

// Target computes the layout every node animates towards when focus is the
// focal node.
//
// Angles are re-mapped to the fraction of the focal span they occupy,
// clamped to [0, 1] and scaled to the full circle. Radii shift inwards by
// the focal depth. Nodes outside the focal span collapse to zero width. A
// focal node with zero width maps every angle to 0 rather than dividing by
// zero. Focusing the root returns the base layout unchanged.
func (l *Layout) Target(h *hierarchy.Hierarchy, focus hierarchy.NodeID) []Arc {
	if focus == hierarchy.RootID {
		return l.Clone()
	}
	p := l.Arcs[focus]
	shift := float64(h.Node(focus).Depth) * l.RingHeight
	out := make([]Arc, len(l.Arcs))
	for i, d := range l.Arcs {
		out[i] = Arc{
			AngleStart:  ratio(d.AngleStart-p.AngleStart, p.Width()) * FullCircle,
			AngleEnd:    ratio(d.AngleEnd-p.AngleStart, p.Width()) * FullCircle,
			RadiusInner: max(0, d.RadiusInner-shift),
			RadiusOuter: max(0, d.RadiusOuter-shift),
		}
	}
	return out
}

// ratio returns num/span clamped to [0, 1], or 0 for a degenerate span.
func ratio(num, span float64) float64 {
	if !(span > 0) {
		return 0
	}
	return min(1, max(0, num/span))
}

// Visible reports whether an arc lies within the drawable rings (outside
// the centre circle and inside the outer edge) and has non-zero width.
func (l *Layout) Visible(a Arc) bool {
	return a.RadiusInner >= l.RingHeight-eps &&
		a.RadiusOuter <= l.Radius+eps &&
		a.Width() > eps
}
