package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/render"
	"github.com/matzehuels/toolverse/pkg/sunburst/styles"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds popularity scores to tool labels and category totals.
	// When false, only names are shown.
	Detailed bool
	// Focus restricts the diagram to one category, by catalog id. Empty
	// draws the whole catalog.
	Focus string
}

// ToDOT converts a hierarchy to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Nodes are filled with the same colours as the sunburst: categories use
// their own colour and tools a brightened version of it.
func ToDOT(h *hierarchy.Hierarchy, opts Options) string {
	fills := styles.Fills(h)
	top := hierarchy.RootID
	if opts.Focus != "" {
		if id, ok := h.CategoryByKey(opts.Focus); ok {
			top = id
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	var edges []string
	for i := range h.Nodes() {
		n := &h.Nodes()[i]
		if !h.IsDescendantOrSelf(n.ID, top) {
			continue
		}
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))}
		if fills[n.ID] != "" {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fills[n.ID]))
		}
		if _, ok := n.Item.(hierarchy.Root); ok {
			attrs = append(attrs, "shape=ellipse", "fontsize=18")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", dotID(n), strings.Join(attrs, ", "))
		if n.ID != top {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", dotID(h.Node(n.Parent)), dotID(n)))
		}
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// dotID namespaces node keys so a tool and category sharing an id stay
// distinct.
func dotID(n *hierarchy.Node) string {
	switch n.Item.(type) {
	case hierarchy.Category:
		return "category:" + n.Key()
	case hierarchy.Tool:
		return "tool:" + n.Key()
	default:
		return "root"
	}
}

func fmtLabel(n *hierarchy.Node, detailed bool) string {
	label := n.Item.Label()
	if !detailed {
		return label
	}
	switch it := n.Item.(type) {
	case hierarchy.Tool:
		return fmt.Sprintf("%s\npopularity: %g", label, it.Popularity)
	case hierarchy.Category:
		return fmt.Sprintf("%s\ntools: %d", label, len(n.Children))
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
