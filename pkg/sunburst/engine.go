package sunburst

import (
	"time"

	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/observability"
	"github.com/matzehuels/toolverse/pkg/sunburst/animate"
	"github.com/matzehuels/toolverse/pkg/sunburst/layout"
	"github.com/matzehuels/toolverse/pkg/sunburst/styles"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// DefaultRadius is the outer radius of the chart in pixels.
const DefaultRadius = 300.0

// State is the focus state of an engine.
type State int

const (
	// AtRoot means the whole catalog is shown.
	AtRoot State = iota
	// FocusedOnCategory means one category fills the chart.
	FocusedOnCategory
)

func (s State) String() string {
	if s == FocusedOnCategory {
		return "FocusedOnCategory"
	}
	return "AtRoot"
}

// Resolution is the outcome of a command that names a node.
type Resolution int

const (
	// Resolved means the name matched and the command was applied.
	Resolved Resolution = iota
	// NotFound means nothing matched; the engine is unchanged.
	NotFound
)

func (r Resolution) String() string {
	if r == NotFound {
		return "NotFound"
	}
	return "Resolved"
}

// Option configures an Engine.
type Option func(*Engine)

// WithRadius sets the outer radius. Non-positive values are ignored.
func WithRadius(r float64) Option {
	return func(e *Engine) {
		if r > 0 {
			e.radius = r
		}
	}
}

// WithDuration sets the transition duration. Zero disables animation.
func WithDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.duration = d
		}
	}
}

// WithEasing sets the transition easing curve.
func WithEasing(ease animate.Easing) Option {
	return func(e *Engine) {
		if ease != nil {
			e.ease = ease
		}
	}
}

// WithLabelThickness sets the minimum ring thickness, in pixels, for labels.
func WithLabelThickness(px float64) Option {
	return func(e *Engine) { e.minLabel = px }
}

// Engine is the focus/zoom state machine of one chart.
type Engine struct {
	h     *hierarchy.Hierarchy
	base  *layout.Layout
	fills []string

	radius   float64
	duration time.Duration
	ease     animate.Easing
	minLabel float64

	focus     hierarchy.NodeID
	highlight hierarchy.NodeID

	current   []layout.Arc
	tr        animate.Transition
	elapsed   time.Duration
	animating bool

	subs    []subscriber
	nextSub int
}

// New creates an engine at the root. The initial layout is drawn without
// animation.
func New(h *hierarchy.Hierarchy, opts ...Option) *Engine {
	e := &Engine{
		h:         h,
		radius:    DefaultRadius,
		duration:  animate.DefaultDuration,
		ease:      animate.CubicInOut,
		minLabel:  animate.DefaultLabelMinThickness,
		focus:     hierarchy.RootID,
		highlight: hierarchy.NoNode,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.base = layout.Partition(h, e.radius)
	e.fills = styles.Fills(h)
	e.current = e.base.Clone()
	e.tr = animate.Transition{Start: e.base.Clone(), Target: e.base.Clone(), Duration: e.duration, Ease: e.ease}
	e.elapsed = e.duration
	return e
}

// NewFromTree builds the hierarchy for root and creates an engine for it.
// It fails with a *hierarchy.MalformedCatalogError for malformed input.
func NewFromTree(root *tree.Node, opts ...Option) (*Engine, error) {
	h, err := hierarchy.Build(root)
	if err != nil {
		return nil, err
	}
	return New(h, opts...), nil
}

// Hierarchy returns the hierarchy the engine was built from.
func (e *Engine) Hierarchy() *hierarchy.Hierarchy { return e.h }

// Radius returns the outer radius.
func (e *Engine) Radius() float64 { return e.radius }

// State returns the current focus state.
func (e *Engine) State() State {
	if e.focus == hierarchy.RootID {
		return AtRoot
	}
	return FocusedOnCategory
}

// Focus returns the focal node.
func (e *Engine) Focus() hierarchy.NodeID { return e.focus }

// HighlightedTool returns the tool highlighted by the last FocusTool, if
// focus has not changed since.
func (e *Engine) HighlightedTool() (hierarchy.NodeID, bool) {
	return e.highlight, e.highlight != hierarchy.NoNode
}

// Base returns a copy of the initial layout.
func (e *Engine) Base() []layout.Arc { return e.base.Clone() }

// Current returns a copy of the layout drawn at the last tick.
func (e *Engine) Current() []layout.Arc { return append([]layout.Arc(nil), e.current...) }

// Target returns a copy of the layout the running transition ends at.
func (e *Engine) Target() []layout.Arc { return append([]layout.Arc(nil), e.tr.Target...) }

// Fill returns the fill colour of node id.
func (e *Engine) Fill(id hierarchy.NodeID) string { return e.fills[id] }

// Animating reports whether a transition is in flight.
func (e *Engine) Animating() bool { return e.animating }

// =============================================================================
// Commands
// =============================================================================

// FocusCategory zooms to the category with the given catalog id. Unknown
// ids return NotFound and change nothing.
func (e *Engine) FocusCategory(id string) Resolution {
	n, ok := e.h.CategoryByKey(id)
	if !ok {
		return NotFound
	}
	e.focusCategory(n)
	return Resolved
}

// FocusTool zooms to the category of the tool whose name matches name,
// ignoring case, and highlights the tool. Unknown names return NotFound and
// change nothing.
func (e *Engine) FocusTool(name string) Resolution {
	t, ok := e.h.ToolByName(name)
	if !ok {
		observability.Chart().OnSearchMiss()
		return NotFound
	}
	e.focusCategory(e.h.Node(t).Parent)
	e.highlight = t
	return Resolved
}

// ResetView zooms back to the root. Repeated calls are idempotent.
func (e *Engine) ResetView() {
	e.setFocus(hierarchy.RootID)
	e.emit(ViewReset{EventID: newEventID()})
}

// ZoomOut moves focus to the parent of the focal node. It reports false at
// the root, where there is nothing to zoom out to.
func (e *Engine) ZoomOut() bool {
	if e.focus == hierarchy.RootID {
		return false
	}
	parent := e.h.Node(e.focus).Parent
	if parent == hierarchy.RootID {
		e.ResetView()
	} else {
		e.focusCategory(parent)
	}
	return true
}

// Click handles a click on node id. A tool emits ToolActivated and keeps
// focus. The focal node itself, drawn as the centre circle, zooms out one
// level. Any other category is focused.
func (e *Engine) Click(id hierarchy.NodeID) {
	if id < 0 || int(id) >= e.h.Len() {
		return
	}
	switch item := e.h.Node(id).Item.(type) {
	case hierarchy.Tool:
		e.activate(id, item)
	case hierarchy.Category:
		if id == e.focus {
			e.ZoomOut()
			return
		}
		e.focusCategory(id)
	case hierarchy.Root:
		e.ZoomOut()
	}
}

// ClickKey clicks the category or tool with the given catalog id.
func (e *Engine) ClickKey(key string) Resolution {
	if key == "" {
		e.Click(e.focus)
		return Resolved
	}
	id, ok := e.h.Lookup(key)
	if !ok {
		return NotFound
	}
	e.Click(id)
	return Resolved
}

// ClickAt hit-tests chart coordinates and clicks the node found there.
func (e *Engine) ClickAt(x, y float64) (hierarchy.NodeID, bool) {
	id, ok := e.HitTest(x, y)
	if ok {
		e.Click(id)
	}
	return id, ok
}

func (e *Engine) focusCategory(id hierarchy.NodeID) {
	e.setFocus(id)
	c := e.h.Node(id).Item.(hierarchy.Category)
	e.emit(CategoryFocused{EventID: newEventID(), CategoryID: e.h.Node(id).Key(), Name: c.Name})
}

// setFocus restarts the transition from whatever is drawn now.
func (e *Engine) setFocus(id hierarchy.NodeID) {
	from := e.h.Node(e.focus).Key()
	e.focus = id
	e.highlight = hierarchy.NoNode
	e.tr = animate.Transition{
		Start:    e.Current(),
		Target:   e.base.Target(e.h, id),
		Duration: e.duration,
		Ease:     e.ease,
	}
	e.elapsed = 0
	e.animating = e.duration > 0
	if !e.animating {
		copy(e.current, e.tr.Target)
	}
	observability.Chart().OnFocus(from, e.h.Node(id).Key())
}

func (e *Engine) activate(id hierarchy.NodeID, t hierarchy.Tool) {
	cat := e.h.Node(id).Parent
	c := e.h.Node(cat).Item.(hierarchy.Category)
	ev := ToolActivated{
		EventID:       newEventID(),
		ToolID:        e.h.Node(id).Key(),
		Name:          t.Name,
		Description:   t.Description,
		URL:           t.URL,
		Category:      c.Name,
		CategoryID:    e.h.Node(cat).Key(),
		CategoryColor: e.fills[cat],
		Popularity:    t.Popularity,
	}
	observability.Chart().OnToolActivated(ev.ToolID, ev.CategoryID)
	e.emit(ev)
}

// =============================================================================
// Animation
// =============================================================================

// Tick sets the drawn layout to the transition state at elapsed time since
// the last focus change and reports whether the transition has finished.
func (e *Engine) Tick(elapsed time.Duration) bool {
	e.elapsed = elapsed
	e.tr.AtInto(e.current, elapsed)
	done := e.tr.Done(elapsed)
	if done && e.animating {
		e.animating = false
		observability.Chart().OnTransitionDone(e.h.Node(e.focus).Key(), e.duration)
	}
	return done
}

// Advance ticks dt past the previous tick.
func (e *Engine) Advance(dt time.Duration) bool {
	return e.Tick(e.elapsed + dt)
}

// Finish jumps to the end of the running transition.
func (e *Engine) Finish() {
	e.Tick(e.tr.Duration)
}
