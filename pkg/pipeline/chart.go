package pipeline

import (
	"time"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/sunburst"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// Chart is the result of the chart stage.
type Chart struct {
	Engine *sunburst.Engine
	Frame  tree.Frame
	Events []sunburst.Event
}

// BuildChart builds an engine for c, applies the focus commands of opts
// and ticks to opts.AtMS.
//
// Unknown focus targets are errors here, unlike in the engine where they
// are silent no-ops: a render request naming a missing category is a bad
// request.
func BuildChart(c *catalog.Catalog, opts Options) (*Chart, error) {
	h, err := hierarchy.FromCatalog(c)
	if err != nil {
		return nil, err
	}
	engineOpts := []sunburst.Option{sunburst.WithRadius(opts.Radius)}
	if d := opts.TransitionDuration(); d > 0 {
		engineOpts = append(engineOpts, sunburst.WithDuration(d))
	}
	e := sunburst.New(h, engineOpts...)

	ch := &Chart{Engine: e}
	unsubscribe := e.Subscribe(func(ev sunburst.Event) { ch.Events = append(ch.Events, ev) })
	defer unsubscribe()

	switch {
	case opts.Tool != "":
		if e.FocusTool(opts.Tool) == sunburst.NotFound {
			return nil, errors.New(errors.ErrCodeToolNotFound, "Tool not found: %s", opts.Tool)
		}
	case opts.Focus != "":
		if e.FocusCategory(opts.Focus) == sunburst.NotFound {
			return nil, errors.New(errors.ErrCodeCategoryNotFound, "Category not found: %s", opts.Focus)
		}
	}

	if opts.Settled() {
		e.Finish()
	} else {
		e.Tick(time.Duration(opts.AtMS) * time.Millisecond)
	}
	ch.Frame = e.Frame()
	ch.Frame.Theme = opts.Theme
	if opts.IsNodelink() {
		ch.Frame.VizType = tree.VizTypeNodelink
	}
	return ch, nil
}
