package sunburst

import (
	"fmt"
	"math"

	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/sunburst/animate"
	"github.com/matzehuels/toolverse/pkg/sunburst/layout"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// Fill opacities.
const (
	CategoryOpacity = 0.6
	ToolOpacity     = 0.4
)

// visible reports whether node id is drawn in the current layout.
func (e *Engine) visible(id hierarchy.NodeID) bool {
	if id == hierarchy.RootID {
		return false
	}
	return e.base.Visible(e.current[id]) && e.h.IsDescendantOrSelf(id, e.focus)
}

// HitTest maps chart coordinates, with the origin at the centre and y
// growing downwards, to the node drawn there. The centre circle belongs to
// the focal node.
func (e *Engine) HitTest(x, y float64) (hierarchy.NodeID, bool) {
	angle, r := layout.Polar(x, y)
	switch {
	case r > e.radius:
		return hierarchy.NoNode, false
	case r < e.base.RingHeight:
		return e.focus, true
	}
	for i, a := range e.current {
		id := hierarchy.NodeID(i)
		if e.visible(id) && a.Contains(angle, r) {
			return id, true
		}
	}
	return hierarchy.NoNode, false
}

// Breadcrumb returns the names from the root to the focal node.
func (e *Engine) Breadcrumb() []string { return e.h.Path(e.focus) }

// CenterInfo returns the text for the centre circle.
func (e *Engine) CenterInfo() tree.Center {
	n := e.h.Node(e.focus)
	if e.focus == hierarchy.RootID {
		return tree.Center{
			Title:    n.Item.Label(),
			Subtitle: fmt.Sprintf("%d categories", len(n.Children)),
			Detail:   fmt.Sprintf("%d tools", e.h.ToolCount()),
		}
	}
	var sum float64
	for _, c := range n.Children {
		sum += e.h.Node(c).Item.(hierarchy.Tool).Popularity
	}
	avg := 0
	if len(n.Children) > 0 {
		avg = int(math.Round(sum / float64(len(n.Children))))
	}
	return tree.Center{
		Title:    n.Item.Label(),
		Subtitle: fmt.Sprintf("%d tools", len(n.Children)),
		Detail:   fmt.Sprintf("avg popularity %d", avg),
	}
}

// Frame snapshots the chart as drawn at the last tick.
func (e *Engine) Frame() tree.Frame {
	f := tree.Frame{
		VizType:    tree.VizTypeSunburst,
		Radius:     e.radius,
		RingHeight: e.base.RingHeight,
		Focus:      e.h.Node(e.focus).Key(),
		ElapsedMS:  float64(e.elapsed) / 1e6,
		Done:       !e.animating || e.tr.Done(e.elapsed),
		Breadcrumb: e.Breadcrumb(),
		Center:     e.CenterInfo(),
		Arcs:       make([]tree.Arc, e.h.Len()),
	}
	if p := e.h.Node(e.focus).Parent; p != hierarchy.NoNode {
		f.Parent = e.h.Node(p).Key()
	}
	if e.highlight != hierarchy.NoNode {
		f.Highlight = e.h.Node(e.highlight).Key()
	}
	for i := range e.h.Nodes() {
		n := &e.h.Nodes()[i]
		a := e.current[i]
		vis := e.visible(n.ID)
		arc := tree.Arc{
			ID:          n.Key(),
			Name:        n.Item.Label(),
			Color:       e.fills[i],
			AngleStart:  a.AngleStart,
			AngleEnd:    a.AngleEnd,
			RadiusInner: a.RadiusInner,
			RadiusOuter: a.RadiusOuter,
			Visible:     vis,
			Label:       vis && animate.LabelVisible(a, e.minLabel),
		}
		switch n.Item.(type) {
		case hierarchy.Root:
			arc.Kind = tree.KindRoot
		case hierarchy.Category:
			arc.Kind = tree.KindCategory
			if vis {
				arc.Opacity = CategoryOpacity
			}
		case hierarchy.Tool:
			arc.Kind = tree.KindTool
			if vis {
				arc.Opacity = ToolOpacity
			}
		}
		f.Arcs[i] = arc
	}
	return f
}
