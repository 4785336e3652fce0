package sunburst

import "github.com/google/uuid"

// Event kinds.
const (
	KindCategoryFocused = "categoryFocused"
	KindViewReset       = "viewReset"
	KindToolActivated   = "toolActivated"
)

// Event is the closed set of notifications an engine emits:
// [CategoryFocused], [ViewReset] and [ToolActivated].
type Event interface {
	// Kind returns the wire name of the event.
	Kind() string
	event()
}

// CategoryFocused is emitted when a category becomes the focal node.
type CategoryFocused struct {
	EventID    string `json:"eventId"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}

// ViewReset is emitted when the chart zooms back to the root.
type ViewReset struct {
	EventID string `json:"eventId"`
}

// ToolActivated is emitted when a tool arc is clicked.
type ToolActivated struct {
	EventID       string  `json:"eventId"`
	ToolID        string  `json:"toolId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	URL           string  `json:"url"`
	Category      string  `json:"category"`
	CategoryID    string  `json:"categoryId"`
	CategoryColor string  `json:"categoryColor"`
	Popularity    float64 `json:"popularity"`
}

func (CategoryFocused) Kind() string { return KindCategoryFocused }
func (ViewReset) Kind() string       { return KindViewReset }
func (ToolActivated) Kind() string   { return KindToolActivated }

func (CategoryFocused) event() {}
func (ViewReset) event()       {}
func (ToolActivated) event()   {}

func newEventID() string { return uuid.NewString() }

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to receive events. Events are delivered
// synchronously, in subscription order, from within the command that caused
// them. The returned function removes the subscription.
func (e *Engine) Subscribe(fn func(Event)) (unsubscribe func()) {
	e.nextSub++
	id := e.nextSub
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) emit(ev Event) {
	for _, s := range append([]subscriber(nil), e.subs...) {
		s.fn(ev)
	}
}
