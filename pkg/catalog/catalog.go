package catalog

import (
	"fmt"

	"github.com/matzehuels/toolverse/pkg/errors"
)

// Catalog is an ordered collection of tool categories.
type Catalog struct {
	Categories []Category `json:"categories" toml:"categories" bson:"categories"`
}

// Category groups related tools.
type Category struct {
	ID          string `json:"id" toml:"id" bson:"id"`
	Name        string `json:"name" toml:"name" bson:"name"`
	Description string `json:"description" toml:"description" bson:"description"`
	Color       string `json:"color" toml:"color" bson:"color"`
	Icon        string `json:"icon,omitempty" toml:"icon" bson:"icon,omitempty"`
	Tools       []Tool `json:"tools" toml:"tools" bson:"tools"`
}

// Tool is a single AI product.
type Tool struct {
	ID          string  `json:"id" toml:"id" bson:"id"`
	Name        string  `json:"name" toml:"name" bson:"name"`
	Description string  `json:"description" toml:"description" bson:"description"`
	URL         string  `json:"url,omitempty" toml:"url" bson:"url,omitempty"`
	Popularity  float64 `json:"popularity" toml:"popularity" bson:"popularity"`
}

// CategorySummary is a category without its tools, as listed by GET /categories.
type CategorySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon,omitempty"`
	ToolCount   int    `json:"toolCount"`
}

// ToolDetail is a tool together with its owning category.
type ToolDetail struct {
	Type string `json:"type"`
	Tool
	Category      string `json:"category"`
	CategoryID    string `json:"categoryId"`
	CategoryColor string `json:"categoryColor"`
}

// Counts returns the number of categories and tools.
func (c *Catalog) Counts() (categories, tools int) {
	for _, cat := range c.Categories {
		tools += len(cat.Tools)
	}
	return len(c.Categories), tools
}

// Summaries lists every category with its tool count.
func (c *Catalog) Summaries() []CategorySummary {
	out := make([]CategorySummary, len(c.Categories))
	for i, cat := range c.Categories {
		out[i] = cat.Summary()
	}
	return out
}

// Summary returns the category without its tools.
func (cat Category) Summary() CategorySummary {
	return CategorySummary{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		Color:       cat.Color,
		Icon:        cat.Icon,
		ToolCount:   len(cat.Tools),
	}
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (*Category, error) {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeCategoryNotFound, "Category not found")
}

// CategoryTools returns the tools of the category with the given id.
func (c *Catalog) CategoryTools(id string) ([]Tool, error) {
	cat, err := c.Category(id)
	if err != nil {
		return nil, err
	}
	return cat.Tools, nil
}

// Tool returns the tool with the given id and its category.
func (c *Catalog) Tool(id string) (*ToolDetail, error) {
	for _, cat := range c.Categories {
		for _, t := range cat.Tools {
			if t.ID == id {
				d := detail(cat, t)
				return &d, nil
			}
		}
	}
	return nil, errors.New(errors.ErrCodeToolNotFound, "Tool not found")
}

func detail(cat Category, t Tool) ToolDetail {
	return ToolDetail{
		Type:          ResultTool,
		Tool:          t,
		Category:      cat.Name,
		CategoryID:    cat.ID,
		CategoryColor: cat.Color,
	}
}

// Validate checks identifiers, names and colours.
//
// Category ids must be unique among categories and tool ids unique among
// tools. Structural checks (a category without tools) are left to the
// hierarchy builder, which reports them as malformed catalogs.
func (c *Catalog) Validate() error {
	catIDs := make(map[string]bool, len(c.Categories))
	toolIDs := make(map[string]bool)
	for i, cat := range c.Categories {
		where := fmt.Sprintf("categories[%d]", i)
		if err := errors.ValidateID(cat.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "%s", where)
		}
		if catIDs[cat.ID] {
			return errors.New(errors.ErrCodeInvalidCatalog, "%s: duplicate category id %q", where, cat.ID)
		}
		catIDs[cat.ID] = true
		if cat.Name == "" {
			return errors.New(errors.ErrCodeInvalidCatalog, "%s: category %q has no name", where, cat.ID)
		}
		if cat.Color != "" {
			if err := errors.ValidateColor(cat.Color); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "%s", where)
			}
		}
		for j, t := range cat.Tools {
			where := fmt.Sprintf("categories[%d].tools[%d]", i, j)
			if err := errors.ValidateID(t.ID); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "%s", where)
			}
			if toolIDs[t.ID] {
				return errors.New(errors.ErrCodeInvalidCatalog, "%s: duplicate tool id %q", where, t.ID)
			}
			toolIDs[t.ID] = true
			if t.Name == "" {
				return errors.New(errors.ErrCodeInvalidCatalog, "%s: tool %q has no name", where, t.ID)
			}
			if t.URL != "" {
				if err := errors.ValidateURL(t.URL); err != nil {
					return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "%s", where)
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{Categories: make([]Category, len(c.Categories))}
	for i, cat := range c.Categories {
		cat.Tools = append([]Tool(nil), cat.Tools...)
		out.Categories[i] = cat
	}
	return out
}
