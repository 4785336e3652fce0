// Package sunburst implements the zoomable sunburst chart engine.
//
// An [Engine] owns the focus state of one chart. It starts at the root and
// moves between categories in response to commands:
//
//   - [Engine.FocusCategory] zooms to a category
//   - [Engine.FocusTool] zooms to the category of a tool, found by name
//   - [Engine.ResetView] zooms back to the root
//   - [Engine.Click] interprets a click on a node id
//
// Every focus change starts a transition from the layout currently drawn
// to the target layout of the new focus. The caller drives the animation by
// calling [Engine.Tick] with the time elapsed since the change; the engine
// keeps no timers. [Engine.Frame] snapshots what a renderer should draw.
//
// Clicking a tool never changes focus. The engine emits a [ToolActivated]
// event and leaves navigation to subscribers.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Servers create one engine per
// connection or request.
package sunburst
