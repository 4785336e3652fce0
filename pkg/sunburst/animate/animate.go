// Package animate interpolates chart layouts over time.
//
// A [Transition] is a pair of layout snapshots plus a duration and easing
// curve. [Transition.At] is a pure function of elapsed time: it holds no
// timers and can be evaluated for any instant, in any order. Restarting an
// animation mid-flight means building a new Transition whose start is the
// layout most recently returned by At.
package animate

import (
	"time"

	"github.com/matzehuels/toolverse/pkg/sunburst/layout"
)

// DefaultDuration is the length of a focus transition.
const DefaultDuration = 750 * time.Millisecond

// Transition interpolates from Start to Target.
type Transition struct {
	Start    []layout.Arc
	Target   []layout.Arc
	Duration time.Duration
	Ease     Easing
}

// New creates a transition with DefaultDuration and CubicInOut easing.
// Both snapshots must have the same length.
func New(start, target []layout.Arc) Transition {
	return Transition{Start: start, Target: target, Duration: DefaultDuration, Ease: CubicInOut}
}

// Progress returns the eased completion fraction at elapsed, in [0, 1].
func (tr Transition) Progress(elapsed time.Duration) float64 {
	if tr.Duration <= 0 || elapsed >= tr.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	ease := tr.Ease
	if ease == nil {
		ease = CubicInOut
	}
	return ease(float64(elapsed) / float64(tr.Duration))
}

// Done reports whether the transition has finished at elapsed.
func (tr Transition) Done(elapsed time.Duration) bool {
	return tr.Duration <= 0 || elapsed >= tr.Duration
}

// At returns the layout at elapsed. Before the start it equals Start and at
// or after Duration it equals Target exactly.
func (tr Transition) At(elapsed time.Duration) []layout.Arc {
	out := make([]layout.Arc, len(tr.Target))
	tr.AtInto(out, elapsed)
	return out
}

// AtInto writes the layout at elapsed into dst, which must be at least as
// long as Target.
func (tr Transition) AtInto(dst []layout.Arc, elapsed time.Duration) {
	if tr.Done(elapsed) {
		copy(dst, tr.Target)
		return
	}
	if elapsed <= 0 {
		copy(dst, tr.Start)
		return
	}
	t := tr.Progress(elapsed)
	for i := range tr.Target {
		dst[i] = Lerp(tr.Start[i], tr.Target[i], t)
	}
}

// Tick evaluates a default transition between start and target at elapsed.
func Tick(start, target []layout.Arc, elapsed time.Duration) []layout.Arc {
	return New(start, target).At(elapsed)
}

// Lerp interpolates every field of two arcs linearly.
func Lerp(a, b layout.Arc, t float64) layout.Arc {
	return layout.Arc{
		AngleStart:  lerp(a.AngleStart, b.AngleStart, t),
		AngleEnd:    lerp(a.AngleEnd, b.AngleEnd, t),
		RadiusInner: lerp(a.RadiusInner, b.RadiusInner, t),
		RadiusOuter: lerp(a.RadiusOuter, b.RadiusOuter, t),
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
