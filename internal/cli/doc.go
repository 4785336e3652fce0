// Package cli implements the toolverse command-line interface.
//
// Commands are built with cobra around a shared [CLI] that owns the
// charmbracelet logger. The logger is attached to each command's context
// (withLogger / loggerFromContext) and handed to the pipeline runner and
// the HTTP server.
//
// # Commands
//
//   - catalog: list, show and search the tool catalog
//   - render: render the sunburst (or node-link) chart to SVG, PNG, PDF or JSON
//   - explore: navigate the chart interactively in the terminal
//   - serve: run the HTTP API and websocket frame stream
//   - theme: show or persist the preferred chart theme
//   - cache: manage the render cache
//   - config: write a starter server configuration
//
// All commands support --verbose (-v) for debug-level logging.
package cli
