package sink

import (
	"github.com/matzehuels/toolverse/pkg/tree"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme       string
	visibleOnly bool
}

// WithJSONTheme records the theme name in the output.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithVisibleOnly drops arcs that are not drawn. Clients that animate on
// their own side need the hidden arcs and should not set this.
func WithVisibleOnly() JSONOption { return func(r *jsonRenderer) { r.visibleOnly = true } }

// RenderJSON exports the frame as a pretty-printed JSON document.
func RenderJSON(f tree.Frame, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if r.theme != "" {
		f.Theme = r.theme
	}
	if r.visibleOnly {
		arcs := make([]tree.Arc, 0, len(f.Arcs))
		for _, a := range f.Arcs {
			if a.Visible {
				arcs = append(arcs, a)
			}
		}
		f.Arcs = arcs
	}
	return tree.MarshalFrame(f)
}
