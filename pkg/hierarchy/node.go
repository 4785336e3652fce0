package hierarchy

// NodeID indexes a node in its hierarchy's arena.
type NodeID int

const (
	// RootID is the id of the root node of every hierarchy.
	RootID NodeID = 0
	// NoNode marks the absent parent of the root.
	NoNode NodeID = -1
)

// MaxDepth is the depth of the deepest level (tools).
const MaxDepth = 2

// Item is the closed set of node variants: Root, Category or Tool.
type Item interface {
	item()
	// Label returns the display name.
	Label() string
}

// Root is the synthetic top of the hierarchy.
type Root struct {
	Name string
}

// Category is a first-level node grouping tools.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
}

// Tool is a leaf.
type Tool struct {
	ID          string
	Name        string
	Description string
	URL         string
	// Popularity is the raw score from the catalog, 0 when absent.
	Popularity float64
}

func (Root) item()     {}
func (Category) item() {}
func (Tool) item()     {}

func (r Root) Label() string     { return r.Name }
func (c Category) Label() string { return c.Name }
func (t Tool) Label() string     { return t.Name }

// Node is one arena record.
type Node struct {
	ID       NodeID
	Parent   NodeID
	Children []NodeID
	Depth    int
	// Weight is the resolved layout weight, always positive.
	Weight float64
	Item   Item
}

// Key returns the catalog identifier of the node. Categories and tools fall
// back to their name when the catalog gave no id; the root has key "".
func (n *Node) Key() string {
	switch it := n.Item.(type) {
	case Category:
		if it.ID != "" {
			return it.ID
		}
		return it.Name
	case Tool:
		if it.ID != "" {
			return it.ID
		}
		return it.Name
	default:
		return ""
	}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }
