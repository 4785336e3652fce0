// Package catalog provides the AI tool catalog: its types, the built-in
// data set and the sources it can be loaded from.
//
// # Overview
//
// A [Catalog] is an ordered list of categories, each holding an ordered list
// of tools. Order is significant: it is the order the sunburst chart lays out
// its rings in, and the order search results are returned in.
//
// # Sources
//
// A [Source] loads a catalog. Available implementations:
//
//   - [Static]: an in-memory catalog (the built-in data set via [Builtin])
//   - [FileSource]: a JSON or TOML file
//   - [RemoteSource]: another toolverse (or compatible) HTTP API
//   - [MongoSource]: a MongoDB collection of category documents
//
// [Open] selects a source from a URI such as "builtin", "catalog.toml",
// "https://tools.example.com/api" or "mongodb://localhost:27017/toolverse".
//
// # Queries
//
// The query methods back the REST API one to one:
//
//	c.Summaries()            // GET /categories
//	c.Category(id)           // GET /categories/{id}
//	c.CategoryTools(id)      // GET /categories/{id}/tools
//	c.Tool(id)               // GET /tool/{id}
//	c.Search(q)              // GET /search?q=
//	c.Tree()                 // GET /sunburst-data
package catalog
