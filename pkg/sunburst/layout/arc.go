package layout

import "math"

// FullCircle is the angular span of the root.
const FullCircle = 2 * math.Pi

// eps absorbs floating-point noise in geometric comparisons.
const eps = 1e-9

// Arc is the angular and radial extent of one node.
type Arc struct {
	AngleStart  float64 `json:"angle_start"`
	AngleEnd    float64 `json:"angle_end"`
	RadiusInner float64 `json:"radius_inner"`
	RadiusOuter float64 `json:"radius_outer"`
}

// Width returns the angular width in radians.
func (a Arc) Width() float64 { return a.AngleEnd - a.AngleStart }

// Thickness returns the radial thickness.
func (a Arc) Thickness() float64 { return a.RadiusOuter - a.RadiusInner }

// MidAngle returns the angle halfway through the arc.
func (a Arc) MidAngle() float64 { return (a.AngleStart + a.AngleEnd) / 2 }

// MidRadius returns the radius halfway through the ring.
func (a Arc) MidRadius() float64 { return (a.RadiusInner + a.RadiusOuter) / 2 }

// IsFinite reports whether every field is a finite number.
func (a Arc) IsFinite() bool {
	for _, v := range [...]float64{a.AngleStart, a.AngleEnd, a.RadiusInner, a.RadiusOuter} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Contains reports whether the polar point (angle, radius) lies inside the
// arc. Start edges are inclusive and end edges exclusive, so adjacent arcs
// never both contain a point.
func (a Arc) Contains(angle, radius float64) bool {
	return angle >= a.AngleStart && angle < a.AngleEnd &&
		radius >= a.RadiusInner && radius < a.RadiusOuter
}

// ApproxEqual reports whether two arcs agree within tol on every field.
func (a Arc) ApproxEqual(b Arc, tol float64) bool {
	return math.Abs(a.AngleStart-b.AngleStart) <= tol &&
		math.Abs(a.AngleEnd-b.AngleEnd) <= tol &&
		math.Abs(a.RadiusInner-b.RadiusInner) <= tol &&
		math.Abs(a.RadiusOuter-b.RadiusOuter) <= tol
}

// Polar converts chart coordinates (origin at the centre, y growing
// downwards as in SVG) into an angle in [0, 2π) and a radius.
func Polar(x, y float64) (angle, radius float64) {
	angle = math.Atan2(x, -y)
	if angle < 0 {
		angle += FullCircle
	}
	return angle, math.Hypot(x, y)
}

// Point converts a polar position into chart coordinates.
func Point(angle, radius float64) (x, y float64) {
	return radius * math.Sin(angle), -radius * math.Cos(angle)
}
