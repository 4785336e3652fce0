// Package render converts chart output between formats.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both the sunburst sink and
// the node-link renderer use them.
//
//	svg := sink.RenderSVG(frame)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [Available] reports whether rsvg-convert is installed; without it the
// conversions fail with an UNSUPPORTED error.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the catalog as a Graphviz tree diagram.
//
// [nodelink]: github.com/matzehuels/toolverse/pkg/render/nodelink
package render
