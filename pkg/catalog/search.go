package catalog

import "strings"

// Search result types.
const (
	ResultCategory = "category"
	ResultTool     = "tool"
)

// MaxSearchResults caps the number of results returned by Search.
const MaxSearchResults = 10

// SearchResult is a category or tool matching a query.
// Type discriminates which fields are populated.
type SearchResult struct {
	Type        string  `json:"type"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`

	// Category results
	Color     string `json:"color,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Tools     []Tool `json:"tools,omitempty"`
	ToolCount int    `json:"toolCount,omitempty"`

	// Tool results
	Category      string `json:"category,omitempty"`
	CategoryID    string `json:"categoryId,omitempty"`
	CategoryColor string `json:"categoryColor,omitempty"`
}

// IsCategory reports whether the result refers to a category.
func (r SearchResult) IsCategory() bool { return r.Type == ResultCategory }

// Search returns categories and tools whose name or description contains q,
// ignoring case. Each matching category precedes its matching tools and the
// result is capped at MaxSearchResults. The empty query matches everything.
func (c *Catalog) Search(q string) []SearchResult {
	q = strings.ToLower(q)
	results := []SearchResult{}
	for _, cat := range c.Categories {
		if matches(q, cat.Name, cat.Description) {
			results = append(results, SearchResult{
				Type:        ResultCategory,
				ID:          cat.ID,
				Name:        cat.Name,
				Description: cat.Description,
				Color:       cat.Color,
				Icon:        cat.Icon,
				Tools:       cat.Tools,
				ToolCount:   len(cat.Tools),
			})
		}
		for _, t := range cat.Tools {
			if matches(q, t.Name, t.Description) {
				results = append(results, SearchResult{
					Type:          ResultTool,
					ID:            t.ID,
					Name:          t.Name,
					Description:   t.Description,
					URL:           t.URL,
					Popularity:    t.Popularity,
					Category:      cat.Name,
					CategoryID:    cat.ID,
					CategoryColor: cat.Color,
				})
			}
		}
		if len(results) >= MaxSearchResults {
			break
		}
	}
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
