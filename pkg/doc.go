// Package pkg provides the core libraries for Toolverse, a directory of AI
// tools drawn as a zoomable sunburst chart.
//
// # Overview
//
// The catalog is a two-level hierarchy: categories on the inner ring and
// their tools on the outer ring, each tool weighted by its popularity.
// Clicking a category zooms it to the full circle; clicking the centre
// zooms back out.
//
// # Architecture
//
// The typical data flow:
//
//	Catalog source (builtin, JSON/TOML file, HTTP API, MongoDB)
//	         ↓
//	    [catalog] package (load, validate, search)
//	         ↓
//	    [hierarchy] package (arena of nodes with values and paths)
//	         ↓
//	    [sunburst/layout] package (partition into arcs)
//	         ↓
//	    [sunburst] package (focus state machine, transitions, events)
//	         ↓
//	    [tree] Frame → [sunburst/sink] SVG/PNG/PDF/JSON
//
// # Quick Start
//
//	h, _ := hierarchy.FromCatalog(catalog.Builtin())
//	e := sunburst.New(h)
//	e.FocusTool("claude")
//	e.Finish()
//	svg := sink.RenderSVG(e.Frame())
//
// # Main Packages
//
// [catalog] - The catalog model, the built-in dataset and its sources.
//
// [hierarchy] - Immutable arena built from a catalog or a [tree] document.
//
// [sunburst] - The chart engine. [sunburst/layout] computes arcs,
// [sunburst/animate] interpolates them and [sunburst/styles] holds the
// light and dark themes.
//
// [render/nodelink] - The hierarchy as a Graphviz tree diagram.
//
// [pipeline] - Load → chart → render with caching, shared by the CLI and
// the HTTP server.
//
// [cache] - Memory, file and Redis caches behind one interface.
//
// [observability] - Hooks for chart, pipeline, cache and HTTP events with a
// Prometheus implementation.
//
// [prefs] - Persisted user preferences (the default theme).
//
// [errors] - Coded errors mapped to HTTP statuses and user messages.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/sunburst/...           # Specific package
//	go test -run Example                 # Examples only
//
// [catalog]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/catalog
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/hierarchy
// [sunburst]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/sunburst
// [sunburst/layout]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/sunburst/layout
// [sunburst/animate]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/sunburst/animate
// [sunburst/styles]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/sunburst/styles
// [tree]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/tree
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/observability
// [prefs]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/prefs
// [errors]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/errors
//
// [sunburst/sink]: https://pkg.go.dev/github.com/matzehuels/toolverse/pkg/sunburst/sink
package pkg
