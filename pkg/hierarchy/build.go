package hierarchy

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// Hierarchy is an immutable weighted tree stored as an arena.
type Hierarchy struct {
	nodes      []Node
	categories map[string]NodeID
	tools      map[string]NodeID // by lowercased name
}

// FromCatalog builds a hierarchy from a catalog.
func FromCatalog(c *catalog.Catalog) (*Hierarchy, error) {
	return Build(c.Tree())
}

// Build converts nested sunburst data into a weighted hierarchy.
//
// The root must have at least one category, every category at least one
// tool, and tools must be leaves. Category keys must be unique. Tool names
// are matched case-insensitively by ToolByName, so the first of two tools
// sharing a name wins that lookup.
func Build(root *tree.Node) (*Hierarchy, error) {
	if root == nil {
		return nil, malformed("", "catalog is empty")
	}
	h := &Hierarchy{
		categories: make(map[string]NodeID, len(root.Children)),
		tools:      make(map[string]NodeID),
	}
	name := root.Name
	if name == "" {
		name = tree.RootName
	}
	if root.IsLeaf() {
		return nil, malformed(name, "catalog has no categories")
	}

	h.nodes = append(h.nodes, Node{ID: RootID, Parent: NoNode, Item: Root{Name: name}})
	for _, cn := range root.Children {
		if err := h.addCategory(cn, name); err != nil {
			return nil, err
		}
	}

	var total float64
	for _, c := range h.nodes[RootID].Children {
		total += h.nodes[c].Weight
	}
	h.nodes[RootID].Weight = total
	return h, nil
}

func (h *Hierarchy) addCategory(cn *tree.Node, parentPath string) error {
	if cn == nil {
		return malformed(fmt.Sprintf("%s[%d]", parentPath, len(h.nodes[RootID].Children)), "empty node")
	}
	path := parentPath + "/" + cn.Name
	if cn.IsLeaf() {
		return malformed(path, "category has no tools")
	}
	id := NodeID(len(h.nodes))
	h.nodes = append(h.nodes, Node{
		ID:     id,
		Parent: RootID,
		Depth:  1,
		Item: Category{
			ID:          cn.ID,
			Name:        cn.Name,
			Description: cn.Description,
			Color:       cn.Color,
		},
	})
	key := h.nodes[id].Key()
	if _, dup := h.categories[key]; dup {
		return malformed(path, "duplicate category %q", key)
	}
	h.categories[key] = id
	h.nodes[RootID].Children = append(h.nodes[RootID].Children, id)

	var total float64
	for i, tn := range cn.Children {
		if tn == nil {
			return malformed(fmt.Sprintf("%s[%d]", path, i), "empty node")
		}
		if !tn.IsLeaf() {
			return malformed(path+"/"+tn.Name, "tool has children; catalogs are limited to %d levels", MaxDepth)
		}
		tid := NodeID(len(h.nodes))
		t := Tool{ID: tn.ID, Name: tn.Name, Description: tn.Description, URL: tn.URL}
		if tn.Value != nil {
			t.Popularity = *tn.Value
		}
		w := leafWeight(tn.Value)
		h.nodes = append(h.nodes, Node{ID: tid, Parent: id, Depth: 2, Weight: w, Item: t})
		h.nodes[id].Children = append(h.nodes[id].Children, tid)
		total += w

		lname := strings.ToLower(tn.Name)
		if _, seen := h.tools[lname]; !seen {
			h.tools[lname] = tid
		}
	}
	h.nodes[id].Weight = total
	return nil
}

// leafWeight resolves a tool's layout weight.
func leafWeight(v *float64) float64 {
	if v == nil || *v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 1
	}
	return *v
}

// Len returns the number of nodes, root included.
func (h *Hierarchy) Len() int { return len(h.nodes) }

// Node returns the node with the given id. It panics if id is out of range.
func (h *Hierarchy) Node(id NodeID) *Node { return &h.nodes[id] }

// Nodes returns the arena in depth-first insertion order. Callers must not
// modify it.
func (h *Hierarchy) Nodes() []Node { return h.nodes }

// Categories returns the category ids in insertion order.
func (h *Hierarchy) Categories() []NodeID { return h.nodes[RootID].Children }

// CategoryByKey looks up a category by its catalog id.
func (h *Hierarchy) CategoryByKey(key string) (NodeID, bool) {
	id, ok := h.categories[key]
	return id, ok
}

// ToolByName looks up a tool by exact name, ignoring case.
func (h *Hierarchy) ToolByName(name string) (NodeID, bool) {
	id, ok := h.tools[strings.ToLower(name)]
	return id, ok
}

// Lookup finds a category by key or a tool by key.
func (h *Hierarchy) Lookup(key string) (NodeID, bool) {
	if id, ok := h.categories[key]; ok {
		return id, true
	}
	for i := range h.nodes {
		if _, isTool := h.nodes[i].Item.(Tool); isTool && h.nodes[i].Key() == key {
			return h.nodes[i].ID, true
		}
	}
	return NoNode, false
}

// IsDescendantOrSelf reports whether id equals ancestor or lies below it.
func (h *Hierarchy) IsDescendantOrSelf(id, ancestor NodeID) bool {
	for ; id != NoNode; id = h.nodes[id].Parent {
		if id == ancestor {
			return true
		}
	}
	return false
}

// Category returns the category a node belongs to: itself for categories,
// the parent for tools and NoNode for the root.
func (h *Hierarchy) Category(id NodeID) NodeID {
	switch h.nodes[id].Item.(type) {
	case Category:
		return id
	case Tool:
		return h.nodes[id].Parent
	default:
		return NoNode
	}
}

// Path returns the labels from the root down to id.
func (h *Hierarchy) Path(id NodeID) []string {
	var out []string
	for ; id != NoNode; id = h.nodes[id].Parent {
		out = append(out, h.nodes[id].Item.Label())
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ToolCount returns the number of tools in the hierarchy.
func (h *Hierarchy) ToolCount() int {
	return len(h.nodes) - 1 - len(h.Categories())
}
