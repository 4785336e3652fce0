package styles

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/toolverse/pkg/hierarchy"
)

// ToolBrightness is the brightening applied to a category colour for its tools.
const ToolBrightness = 0.3

// brighterBase is the per-unit brightening factor (each unit divides the
// channels by 0.7).
const brighterBase = 1 / 0.7

// Brighter scales the RGB channels of a hex colour by (1/0.7)^k, clamping
// to the valid range. Unparseable input is returned unchanged.
func Brighter(hex string, k float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	f := math.Pow(brighterBase, k)
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped().Hex()
}

// Palette returns n evenly spaced hues around the colour wheel.
func Palette(n int) []string {
	out := make([]string, n)
	for i := range out {
		hue := 360 * float64(i) / float64(n+1)
		out[i] = colorful.Hsl(hue, 0.75, 0.55).Hex()
	}
	return out
}

// Fills resolves the fill colour of every node in h, indexed by NodeID. The
// root has no fill.
func Fills(h *hierarchy.Hierarchy) []string {
	cats := h.Categories()
	palette := Palette(len(cats))
	catColor := make(map[hierarchy.NodeID]string, len(cats))
	for i, id := range cats {
		c := h.Node(id).Item.(hierarchy.Category).Color
		if _, err := colorful.Hex(c); err != nil {
			c = palette[i]
		}
		catColor[id] = c
	}

	out := make([]string, h.Len())
	for _, n := range h.Nodes() {
		switch n.Item.(type) {
		case hierarchy.Root:
			out[n.ID] = ""
		case hierarchy.Category:
			out[n.ID] = catColor[n.ID]
		case hierarchy.Tool:
			out[n.ID] = Brighter(catColor[n.Parent], ToolBrightness)
		}
	}
	return out
}
