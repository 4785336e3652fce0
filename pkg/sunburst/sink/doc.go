// Package sink writes chart frames in output formats.
//
// A "sink" turns a [tree.Frame], the snapshot an engine produces at one
// instant, into bytes:
//
//   - SVG: arcs, labels and the centre circle, themed
//   - JSON: the frame itself, for browser renderers
//   - PDF and PNG: SVG converted through rsvg-convert
//
// Every drawn element carries a data-node attribute with the catalog id of
// its node, so a browser can map clicks back to engine commands.
//
//	svg := sink.RenderSVG(engine.Frame(), sink.WithTheme(styles.Dark))
//	png, err := sink.RenderPNG(ctx, frame, sink.WithScale(2))
//
// [tree.Frame]: github.com/matzehuels/toolverse/pkg/tree.Frame
package sink
