package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/sunburst"
)

func newTestExplore(t *testing.T) *exploreModel {
	t.Helper()
	h, err := hierarchy.FromCatalog(catalog.Builtin())
	if err != nil {
		t.Fatal(err)
	}
	return newExploreModel(sunburst.New(h, sunburst.WithDuration(40*time.Millisecond)), "dark")
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle feeds the model frame messages until the transition has ended.
func settle(t *testing.T, m *exploreModel, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a frame command")
	}
	_, cmd = m.Update(frameMsg(m.started.Add(10 * time.Millisecond)))
	if cmd == nil || !m.engine.Animating() {
		t.Fatal("transition ended early")
	}
	_, cmd = m.Update(frameMsg(m.started.Add(time.Second)))
	if cmd != nil || m.engine.Animating() {
		t.Fatal("transition still running")
	}
}

func focusKey(m *exploreModel) string {
	return m.engine.Hierarchy().Node(m.engine.Focus()).Key()
}

func TestExploreCursor(t *testing.T) {
	m := newTestExplore(t)

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{keys("j"), 1},
		{tea.KeyMsg{Type: tea.KeyDown}, 2},
		{keys("k"), 1},
		{keys("h"), 0},
		{keys("k"), 0},
	}
	for i, s := range steps {
		m.Update(s.msg)
		if m.cursor != s.want {
			t.Fatalf("step %d: cursor = %d, want %d", i, m.cursor, s.want)
		}
	}
	for range 20 {
		m.Update(keys("l"))
	}
	if want := len(m.items()) - 1; m.cursor != want {
		t.Errorf("cursor = %d, want clamp at %d", m.cursor, want)
	}
}

func TestExploreFocusAndZoomOut(t *testing.T) {
	m := newTestExplore(t)

	m.Update(keys("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := focusKey(m); got != "image-generation" {
		t.Fatalf("focus = %q", got)
	}
	if m.cursor != 0 {
		t.Errorf("cursor not reset on focus change: %d", m.cursor)
	}
	settle(t, m, cmd)

	if len(m.items()) != 4 {
		t.Errorf("items = %d, want 4 tools", len(m.items()))
	}
	view := m.View()
	for _, want := range []string{"Image Generation", "Midjourney", "%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.engine.Focus() != hierarchy.RootID {
		t.Fatal("backspace did not zoom out")
	}
	settle(t, m, cmd)

	want := []string{"focused Image Generation", "reset view"}
	if strings.Join(m.log, "|") != strings.Join(want, "|") {
		t.Errorf("log = %q, want %q", m.log, want)
	}
}

func TestExploreActivateTool(t *testing.T) {
	m := newTestExplore(t)
	m.engine.FocusCategory("text-generation")
	m.engine.Finish()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("activating a tool should not animate")
	}
	if focusKey(m) != "text-generation" {
		t.Error("activation changed focus")
	}
	last := m.log[len(m.log)-1]
	if !strings.Contains(last, "activated ChatGPT") || !strings.Contains(last, "https://chat.openai.com") {
		t.Errorf("log = %q", last)
	}
}

func TestExploreSearch(t *testing.T) {
	m := newTestExplore(t)

	m.Update(keys("/"))
	if !m.searching {
		t.Fatal("/ did not start a search")
	}
	m.Update(keys("clau"))
	m.Update(keys("x"))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(keys("de"))
	if m.query != "claude" {
		t.Fatalf("query = %q", m.query)
	}
	if !strings.Contains(m.View(), "/claude") {
		t.Error("view does not echo the query")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Error("enter did not end the search")
	}
	if focusKey(m) != "text-generation" || m.cursor != 1 {
		t.Errorf("focus = %q cursor = %d, want text-generation and 1", focusKey(m), m.cursor)
	}
	settle(t, m, cmd)
	if !strings.Contains(m.View(), "★") {
		t.Error("highlighted tool not marked")
	}

	m.Update(keys("/"))
	m.Update(keys("nothing"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.status, `no tool named "nothing"`) {
		t.Errorf("status = %q", m.status)
	}
	if focusKey(m) != "text-generation" {
		t.Error("failed search changed focus")
	}

	m.Update(keys("/"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Error("esc did not cancel the search")
	}
}

func TestExploreReset(t *testing.T) {
	m := newTestExplore(t)
	m.engine.FocusTool("Cursor")
	m.engine.Finish()

	_, cmd := m.Update(keys("r"))
	settle(t, m, cmd)
	if m.engine.Focus() != hierarchy.RootID {
		t.Error("r did not reset the view")
	}
	if _, ok := m.engine.HighlightedTool(); ok {
		t.Error("reset kept the highlight")
	}
}

func TestExploreQuit(t *testing.T) {
	m := newTestExplore(t)
	_, cmd := m.Update(keys("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
