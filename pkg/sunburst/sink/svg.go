package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/toolverse/pkg/sunburst/layout"
	"github.com/matzehuels/toolverse/pkg/sunburst/styles"
	"github.com/matzehuels/toolverse/pkg/tree"
)

const chartCSS = `
    .arc { cursor: pointer; transition: fill-opacity 0.2s ease; }
    .arc:hover { fill-opacity: 0.85; }
    .parent { cursor: pointer; }
    .label { pointer-events: none; user-select: none; }`

// HighlightWidth is the stroke width of a highlighted tool.
const HighlightWidth = 3

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme    styles.Theme
	themeSet bool
	padding  float64
	center   bool
}

// WithTheme overrides the theme recorded in the frame.
func WithTheme(t styles.Theme) SVGOption {
	return func(r *svgRenderer) { r.theme = t; r.themeSet = true }
}

// WithPadding sets the margin around the chart in pixels.
func WithPadding(px float64) SVGOption { return func(r *svgRenderer) { r.padding = max(0, px) } }

// WithoutCenter omits the centre circle text.
func WithoutCenter() SVGOption { return func(r *svgRenderer) { r.center = false } }

// RenderSVG draws a frame. Hidden arcs are skipped; arcs are drawn in frame
// order so tools paint over their category.
func RenderSVG(f tree.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{padding: 10, center: true}
	for _, opt := range opts {
		opt(&r)
	}
	if !r.themeSet {
		r.theme, _ = styles.ParseTheme(f.Theme)
		if r.theme.Name == "" {
			r.theme = styles.Light
		}
	}

	size := 2 * (f.Radius + r.padding)
	half := size / 2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f" font-family="sans-serif">`+"\n",
		num(-half), num(-half), num(size), num(size), size, size)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", chartCSS)
	fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(-half), num(-half), num(size), num(size), r.theme.Background)

	renderArcs(&buf, f, r.theme)
	renderLabels(&buf, f, r.theme)
	renderParent(&buf, f, r.theme, r.center)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderArcs(buf *bytes.Buffer, f tree.Frame, th styles.Theme) {
	buf.WriteString(`  <g class="arcs">` + "\n")
	for _, a := range f.Arcs {
		if !a.Visible {
			continue
		}
		stroke := ""
		if a.ID != "" && a.ID == f.Highlight {
			stroke = fmt.Sprintf(` stroke="%s" stroke-width="%d"`, th.Highlight, HighlightWidth)
		}
		fmt.Fprintf(buf, `    <path class="arc arc-%s" data-node="%s" d="%s" fill="%s" fill-opacity="%s"%s><title>%s</title></path>`+"\n",
			a.Kind, styles.EscapeXML(a.ID), arcPath(a, padAngle(f.Radius)), a.Color, num(a.Opacity), stroke, styles.EscapeXML(a.Name))
	}
	buf.WriteString("  </g>\n")
}

func renderLabels(buf *bytes.Buffer, f tree.Frame, th styles.Theme) {
	buf.WriteString(`  <g class="labels" text-anchor="middle">` + "\n")
	for _, a := range f.Arcs {
		if !a.Label {
			continue
		}
		thickness := a.RadiusOuter - a.RadiusInner
		size := styles.FontSize(thickness)
		fmt.Fprintf(buf, `    <text class="label" data-node="%s" transform="%s" dy="0.35em" font-size="%s" fill="%s">%s</text>`+"\n",
			styles.EscapeXML(a.ID), labelTransform(a), num(size), th.Text,
			styles.EscapeXML(styles.TruncateLabel(a.Name, thickness, size)))
	}
	buf.WriteString("  </g>\n")
}

func renderParent(buf *bytes.Buffer, f tree.Frame, th styles.Theme, center bool) {
	fmt.Fprintf(buf, `  <circle class="parent" data-node="%s" data-parent="%s" r="%s" fill="none" pointer-events="all"/>`+"\n",
		styles.EscapeXML(f.Focus), styles.EscapeXML(f.Parent), num(f.RingHeight))
	if !center || f.Center.Title == "" {
		return
	}
	buf.WriteString(`  <g class="center" text-anchor="middle">` + "\n")
	fmt.Fprintf(buf, `    <text y="-6" font-size="16" font-weight="bold" fill="%s">%s</text>`+"\n",
		th.Text, styles.EscapeXML(f.Center.Title))
	if f.Center.Subtitle != "" {
		fmt.Fprintf(buf, `    <text y="14" font-size="12" fill="%s">%s</text>`+"\n",
			th.Muted, styles.EscapeXML(f.Center.Subtitle))
	}
	if f.Center.Detail != "" {
		fmt.Fprintf(buf, `    <text y="30" font-size="11" fill="%s">%s</text>`+"\n",
			th.Muted, styles.EscapeXML(f.Center.Detail))
	}
	buf.WriteString("  </g>\n")
}

// padAngle is the gap between neighbouring arcs: one pixel at the rim.
func padAngle(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return 1 / radius
}

// arcPath returns the SVG path of an annular sector. The outer edge is
// pulled in by one pixel so rings do not touch.
func arcPath(a tree.Arc, pad float64) string {
	width := a.AngleEnd - a.AngleStart
	pad = min(pad, width/2)
	s, e := a.AngleStart+pad/2, a.AngleEnd-pad/2
	ri := a.RadiusInner
	ro := max(ri, a.RadiusOuter-1)

	if e-s >= layout.FullCircle-1e-9 {
		return ringPath(ri, ro)
	}
	large := 0
	if e-s > math.Pi {
		large = 1
	}

	var buf bytes.Buffer
	x0, y0 := layout.Point(s, ro)
	x1, y1 := layout.Point(e, ro)
	fmt.Fprintf(&buf, "M%s,%sA%s,%s,0,%d,1,%s,%s", num(x0), num(y0), num(ro), num(ro), large, num(x1), num(y1))
	if ri <= 0 {
		buf.WriteString("L0,0Z")
		return buf.String()
	}
	x2, y2 := layout.Point(e, ri)
	x3, y3 := layout.Point(s, ri)
	fmt.Fprintf(&buf, "L%s,%sA%s,%s,0,%d,0,%s,%sZ", num(x2), num(y2), num(ri), num(ri), large, num(x3), num(y3))
	return buf.String()
}

// ringPath draws a full annulus as two half circles per edge.
func ringPath(ri, ro float64) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "M0,%sA%s,%s,0,1,1,0,%sA%s,%s,0,1,1,0,%sZ",
		num(-ro), num(ro), num(ro), num(ro), num(ro), num(ro), num(-ro))
	if ri > 0 {
		fmt.Fprintf(&buf, "M0,%sA%s,%s,0,1,0,0,%sA%s,%s,0,1,0,0,%sZ",
			num(-ri), num(ri), num(ri), num(ri), num(ri), num(ri), num(-ri))
	}
	return buf.String()
}

// labelTransform rotates a label to run along the radius of its arc,
// flipping labels on the left half so they stay upright.
func labelTransform(a tree.Arc) string {
	deg := (a.AngleStart + a.AngleEnd) / 2 * 180 / math.Pi
	r := (a.RadiusInner + a.RadiusOuter) / 2
	flip := 0
	if deg >= 180 {
		flip = 180
	}
	return fmt.Sprintf("rotate(%s) translate(%s,0) rotate(%d)", num(deg-90), num(r), flip)
}

// num formats a coordinate rounded to two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
