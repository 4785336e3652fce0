// Package tree provides serialization types for catalog trees and chart frames.
//
// This package defines the canonical wire format for toolverse data, used for
// JSON files, API responses, caching and the websocket frame stream.
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Node], [Frame]: Serialization types (this package)
//   - pkg/hierarchy.Hierarchy: Internal weighted hierarchy (arena)
//   - pkg/sunburst.Engine: Internal focus and animation state
//
// # Core Types
//
//   - [Node]: Nested sunburst data (root, categories, tools)
//   - [Frame]: Snapshot of every arc as rendered at one animation instant
//   - [Arc]: One positioned ring segment within a frame
//
// # Constants
//
// This package is the single source of truth for visualization constants:
//
//	tree.VizTypeSunburst   // "sunburst"
//	tree.VizTypeNodelink   // "nodelink"
//	tree.ThemeLight        // "light"
//	tree.ThemeDark         // "dark"
//
// # Tree Serialization
//
// Trees use the nested format served by GET /sunburst-data:
//
//	{
//	  "name": "AI Tools",
//	  "children": [
//	    {"id": "text-generation", "name": "Text Generation", "color": "#4F46E5",
//	     "children": [{"id": "chatgpt", "name": "ChatGPT", "value": 95}]}
//	  ]
//	}
package tree
