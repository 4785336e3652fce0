package catalog

import (
	"fmt"

	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// Tree converts the catalog into nested sunburst data.
// Tool nodes carry their popularity as value and their category's colour.
func (c *Catalog) Tree() *tree.Node {
	root := &tree.Node{Name: tree.RootName, Children: make([]*tree.Node, 0, len(c.Categories))}
	for _, cat := range c.Categories {
		cn := &tree.Node{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Color:       cat.Color,
			Children:    make([]*tree.Node, 0, len(cat.Tools)),
		}
		for _, t := range cat.Tools {
			cn.Children = append(cn.Children, &tree.Node{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				URL:         t.URL,
				Value:       tree.Value(t.Popularity),
				Color:       cat.Color,
			})
		}
		root.Children = append(root.Children, cn)
	}
	return root
}

// FromTree converts nested sunburst data back into a catalog.
//
// The tree must have the root/category/tool shape: every category needs at
// least one tool and tools must be leaves. Anything else is an
// INVALID_CATALOG error naming the offending node, never a silent cut.
// Missing popularity values become 0 and icons are taken from the
// well-known table.
func FromTree(root *tree.Node) (*Catalog, error) {
	if root == nil {
		return nil, malformedTree("", "catalog is empty")
	}
	rootPath := root.Name
	if rootPath == "" {
		rootPath = tree.RootName
	}
	c := &Catalog{Categories: make([]Category, 0, len(root.Children))}
	for i, cn := range root.Children {
		if cn == nil {
			return nil, malformedTree(fmt.Sprintf("%s[%d]", rootPath, i), "empty node")
		}
		path := rootPath + "/" + cn.Name
		if cn.IsLeaf() {
			return nil, malformedTree(path, "category has no tools")
		}
		cat := Category{
			ID:          cn.ID,
			Name:        cn.Name,
			Description: cn.Description,
			Color:       cn.Color,
			Icon:        Icon(cn.ID),
		}
		for j, tn := range cn.Children {
			if tn == nil {
				return nil, malformedTree(fmt.Sprintf("%s[%d]", path, j), "empty node")
			}
			if !tn.IsLeaf() {
				return nil, malformedTree(path+"/"+tn.Name, "tool has children; catalogs are limited to 2 levels")
			}
			t := Tool{ID: tn.ID, Name: tn.Name, Description: tn.Description, URL: tn.URL}
			if tn.Value != nil {
				t.Popularity = *tn.Value
			}
			cat.Tools = append(cat.Tools, t)
		}
		c.Categories = append(c.Categories, cat)
	}
	return c, nil
}

// malformedTree matches the wording of hierarchy.MalformedCatalogError.
func malformedTree(path, reason string) error {
	return errors.New(errors.ErrCodeInvalidCatalog, "malformed catalog at %q: %s", path, reason)
}
