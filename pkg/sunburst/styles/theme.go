package styles

import (
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// Theme is a colour scheme for the chart.
type Theme struct {
	Name       string
	Background string
	Text       string
	Muted      string
	Stroke     string
	Highlight  string
}

// Built-in themes.
var (
	Light = Theme{
		Name:       tree.ThemeLight,
		Background: "#ffffff",
		Text:       "#1e293b",
		Muted:      "#64748b",
		Stroke:     "#ffffff",
		Highlight:  "#f59e0b",
	}
	Dark = Theme{
		Name:       tree.ThemeDark,
		Background: "#0f172a",
		Text:       "#f1f5f9",
		Muted:      "#94a3b8",
		Stroke:     "#0f172a",
		Highlight:  "#f59e0b",
	}
)

// ParseTheme returns the theme with the given name. The empty name selects Light.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "", tree.ThemeLight:
		return Light, nil
	case tree.ThemeDark:
		return Dark, nil
	}
	return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (want light or dark)", name)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == tree.ThemeDark {
		return Light
	}
	return Dark
}
