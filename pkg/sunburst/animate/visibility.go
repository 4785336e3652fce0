package animate

import "github.com/matzehuels/toolverse/pkg/sunburst/layout"

// Label thresholds.
const (
	// LabelMinAngle is the smallest angular width, in radians, that gets a label.
	LabelMinAngle = 0.15
	// DefaultLabelMinThickness is the smallest ring thickness, in pixels,
	// that gets a label.
	DefaultLabelMinThickness = 12.0
)

// LabelVisible reports whether an arc, as currently drawn, is large enough
// to carry a label. Callers combine it with layout visibility; a label is
// never shown for an arc that is not drawn.
func LabelVisible(a layout.Arc, minThickness float64) bool {
	return a.Width() > LabelMinAngle && a.Thickness() > minThickness
}
