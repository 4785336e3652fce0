package tree

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeSunburst = "sunburst"
	VizTypeNodelink = "nodelink"
)

// Color themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Node kinds as they appear in frames.
const (
	KindRoot     = "root"
	KindCategory = "category"
	KindTool     = "tool"
)

// RootName is the display name of the synthetic root of every catalog tree.
const RootName = "AI Tools"

// =============================================================================
// Node - Nested Sunburst Data
// =============================================================================

// Node is one level of the nested sunburst data.
//
// Depth determines the meaning: the root holds categories, a category holds
// tools and a tool is a leaf. Value carries tool popularity and is nil on
// inner nodes.
type Node struct {
	ID          string   `json:"id,omitempty" bson:"id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Color       string   `json:"color,omitempty" bson:"color,omitempty"`
	URL         string   `json:"url,omitempty" bson:"url,omitempty"`
	Value       *float64 `json:"value,omitempty" bson:"value,omitempty"`
	Children    []*Node  `json:"children,omitempty" bson:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Walk visits n and its descendants depth-first in insertion order.
// Returning false from fn stops descent into that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Value returns a pointer to v, for building literal trees.
func Value(v float64) *float64 { return &v }

// =============================================================================
// Frame - Rendered Chart Snapshot
// =============================================================================

// Frame is the serialization format for one rendered instant of the chart.
//
// Arcs are listed in hierarchy order (root first, then each category followed
// by its tools). Arcs that are not visible are still listed so that clients
// can animate them back in; Visible and Opacity tell a renderer what to draw.
type Frame struct {
	VizType    string   `json:"viz_type" bson:"viz_type"`
	Radius     float64  `json:"radius" bson:"radius"`
	RingHeight float64  `json:"ring_height" bson:"ring_height"`
	Theme      string   `json:"theme,omitempty" bson:"theme,omitempty"`
	Focus      string   `json:"focus,omitempty" bson:"focus,omitempty"`
	Parent     string   `json:"parent,omitempty" bson:"parent,omitempty"`
	Highlight  string   `json:"highlight,omitempty" bson:"highlight,omitempty"`
	ElapsedMS  float64  `json:"elapsed_ms" bson:"elapsed_ms"`
	Done       bool     `json:"done" bson:"done"`
	Breadcrumb []string `json:"breadcrumb,omitempty" bson:"breadcrumb,omitempty"`
	Center     Center   `json:"center" bson:"center"`
	Arcs       []Arc    `json:"arcs" bson:"arcs"`
}

// Center is the text shown in the chart's centre circle.
type Center struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Detail   string `json:"detail,omitempty" bson:"detail,omitempty"`
}

// Arc is one ring segment of a frame.
type Arc struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Kind        string  `json:"kind" bson:"kind"`
	Color       string  `json:"color" bson:"color"`
	AngleStart  float64 `json:"angle_start" bson:"angle_start"`
	AngleEnd    float64 `json:"angle_end" bson:"angle_end"`
	RadiusInner float64 `json:"radius_inner" bson:"radius_inner"`
	RadiusOuter float64 `json:"radius_outer" bson:"radius_outer"`
	Opacity     float64 `json:"opacity" bson:"opacity"`
	Visible     bool    `json:"visible" bson:"visible"`
	Label       bool    `json:"label" bson:"label"`
}

// Width returns the angular width of the arc.
func (a Arc) Width() float64 { return a.AngleEnd - a.AngleStart }
