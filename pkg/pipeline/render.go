package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/render/nodelink"
	"github.com/matzehuels/toolverse/pkg/sunburst/sink"
	"github.com/matzehuels/toolverse/pkg/sunburst/styles"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, ch *Chart, opts Options) (map[string][]byte, error) {
	if opts.IsNodelink() {
		return renderNodelink(ctx, ch.Engine.Hierarchy(), ch.Frame, opts)
	}
	return renderSunburst(ctx, ch.Frame, opts)
}

func renderSunburst(ctx context.Context, f tree.Frame, opts Options) (map[string][]byte, error) {
	theme, err := styles.ParseTheme(opts.Theme)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithTheme(theme)}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var svg []byte
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			if svg == nil {
				svg = sink.RenderSVG(f, svgOpts...)
			}
			data = svg
		case FormatJSON:
			data, err = sink.RenderJSON(f)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, f, sink.WithScale(DefaultScale), sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, f, svgOpts...)
		default:
			return nil, fmt.Errorf("unsupported sunburst format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderNodelink draws the subtree of the focused category, or the whole
// catalog at the root. JSON output is the nested catalog tree.
func renderNodelink(ctx context.Context, h *hierarchy.Hierarchy, f tree.Frame, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(h, nodelink.Options{Detailed: opts.Detailed, Focus: f.Focus})

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, DefaultScale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatJSON:
			data, err = tree.MarshalTree(subtree(h, f.Focus))
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// subtree converts the hierarchy below the category with key focus (or the
// whole hierarchy) back into nested sunburst data.
func subtree(h *hierarchy.Hierarchy, focus string) *tree.Node {
	top := hierarchy.RootID
	if id, ok := h.CategoryByKey(focus); ok && focus != "" {
		top = id
	}
	var build func(id hierarchy.NodeID) *tree.Node
	build = func(id hierarchy.NodeID) *tree.Node {
		n := h.Node(id)
		out := &tree.Node{Name: n.Item.Label()}
		switch it := n.Item.(type) {
		case hierarchy.Category:
			out.ID, out.Description, out.Color = it.ID, it.Description, it.Color
		case hierarchy.Tool:
			out.ID, out.Description, out.URL = it.ID, it.Description, it.URL
			out.Value = tree.Value(it.Popularity)
		}
		for _, c := range n.Children {
			out.Children = append(out.Children, build(c))
		}
		return out
	}
	return build(top)
}
