package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/pipeline"
	"github.com/matzehuels/toolverse/pkg/sunburst"
)

const (
	exploreFrameInterval = time.Second / 60
	exploreLogSize       = 5
	exploreBarWidth      = 24
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		source   string
		duration time.Duration
	)
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Navigate the sunburst chart in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(false)
			if err != nil {
				return err
			}
			defer runner.Close()

			cat, err := runner.Load(cmd.Context(), pipeline.Options{Catalog: source})
			if err != nil {
				return err
			}
			h, err := hierarchy.FromCatalog(cat)
			if err != nil {
				return err
			}
			m := newExploreModel(sunburst.New(h, sunburst.WithDuration(duration)), c.defaultTheme())
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&source, "catalog", catalog.BuiltinURI, "catalog source")
	cmd.Flags().DurationVar(&duration, "duration", 750*time.Millisecond, "zoom transition length")
	return cmd
}

// =============================================================================
// exploreModel
// =============================================================================

// frameMsg advances the running transition.
type frameMsg time.Time

// exploreModel is the bubbletea model driving a sunburst engine: the list
// shows the children of the focal node with their angular share of the
// drawn chart.
type exploreModel struct {
	engine *sunburst.Engine
	theme  string

	cursor    int
	started   time.Time
	searching bool
	query     string
	status    string
	log       []string
}

func newExploreModel(e *sunburst.Engine, theme string) *exploreModel {
	m := &exploreModel{engine: e, theme: theme}
	e.Subscribe(m.record)
	return m
}

// record appends an engine event to the event log.
func (m *exploreModel) record(ev sunburst.Event) {
	var line string
	switch ev := ev.(type) {
	case sunburst.CategoryFocused:
		line = "focused " + ev.Name
	case sunburst.ViewReset:
		line = "reset view"
	case sunburst.ToolActivated:
		line = fmt.Sprintf("activated %s → %s", ev.Name, ev.URL)
	}
	m.log = append(m.log, line)
	if len(m.log) > exploreLogSize {
		m.log = m.log[len(m.log)-exploreLogSize:]
	}
}

// items are the children of the focal node, the rows of the list.
func (m *exploreModel) items() []hierarchy.NodeID {
	h := m.engine.Hierarchy()
	return h.Node(m.engine.Focus()).Children
}

func (m *exploreModel) Init() tea.Cmd { return nil }

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.engine.Animating() {
			return m, nil
		}
		if m.engine.Tick(time.Time(msg).Sub(m.started)) {
			return m, nil
		}
		return m, nextFrame()
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *exploreModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k", "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "right", "l":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(items) > 0 {
			return m, m.command(func() { m.engine.Click(items[m.cursor]) })
		}
	case "backspace":
		return m, m.command(func() { m.engine.ZoomOut() })
	case "r":
		return m, m.command(m.engine.ResetView)
	case "/":
		m.searching = true
		m.query = ""
	}
	return m, nil
}

func (m *exploreModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
	case tea.KeyEnter:
		m.searching = false
		query := m.query
		return m, m.command(func() {
			if m.engine.FocusTool(query) == sunburst.NotFound {
				m.status = fmt.Sprintf("no tool named %q", query)
				return
			}
			m.selectHighlight()
		})
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	}
	return m, nil
}

// command runs fn against the engine and starts the frame loop when it
// began a transition.
func (m *exploreModel) command(fn func()) tea.Cmd {
	focus := m.engine.Focus()
	fn()
	if m.engine.Focus() != focus {
		m.cursor = 0
		if _, ok := m.engine.HighlightedTool(); ok {
			m.selectHighlight()
		}
	}
	if !m.engine.Animating() {
		return nil
	}
	m.started = time.Now()
	return nextFrame()
}

// selectHighlight moves the cursor onto the highlighted tool.
func (m *exploreModel) selectHighlight() {
	hl, ok := m.engine.HighlightedTool()
	if !ok {
		return
	}
	for i, id := range m.items() {
		if id == hl {
			m.cursor = i
		}
	}
}

func nextFrame() tea.Cmd {
	return tea.Tick(exploreFrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *exploreModel) View() string {
	var b strings.Builder
	h := m.engine.Hierarchy()
	arcs := m.engine.Current()

	b.WriteString(StyleTitle.Render(strings.Join(m.engine.Breadcrumb(), " › ")))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(m.engine.State().String() + " · " + m.theme))
	b.WriteString("\n")

	center := m.engine.CenterInfo()
	b.WriteString(StyleValue.Render(center.Title))
	for _, s := range []string{center.Subtitle, center.Detail} {
		if s != "" {
			b.WriteString(listDimStyle.Render(" · " + s))
		}
	}
	b.WriteString("\n\n")

	hl, _ := m.engine.HighlightedTool()
	for i, id := range m.items() {
		n := h.Node(id)
		share := (arcs[id].AngleEnd - arcs[id].AngleStart) / (2 * math.Pi)
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		name := n.Item.Label()
		if id == hl {
			name += " " + StyleWarning.Render("★")
		}
		fmt.Fprintf(&b, "%s%s %s %s\n",
			cursor,
			bar(share, exploreBarWidth, m.engine.Fill(id)),
			listDimStyle.Render(fmt.Sprintf("%5.1f%%", share*100)),
			style.Render(name))
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(StyleHighlight.Render("/" + m.query + "▏"))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(StyleWarning.Render(m.status))
		b.WriteString("\n")
	}
	for _, line := range m.log {
		b.WriteString(listDimStyle.Render("  " + iconInfo + " " + line))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render("↑/↓ select  ⏎ open  ⌫ zoom out  r reset  / find tool  q quit"))
	return b.String()
}
