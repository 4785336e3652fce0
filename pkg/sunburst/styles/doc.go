// Package styles holds the colours, themes and label metrics of the
// sunburst chart.
//
// Category arcs are filled with their catalog colour, or with a rainbow
// palette entry when the catalog gave none. Tool arcs use their category's
// colour brightened by [ToolBrightness].
package styles
