// Package nodelink renders the catalog as a node-link diagram.
//
// # Overview
//
// This package is the alternative to the sunburst: the root, its
// categories and their tools are drawn as boxes connected by arrows,
// laid out left to right by Graphviz.
//
// # Usage
//
// Convert a hierarchy to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(h, nodelink.Options{Focus: "code-generation"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
