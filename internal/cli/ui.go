package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success, cache hits
	colorYellow = lipgloss.Color("220") // warnings, ratings
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // links, commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted text, table borders
)

var (
	// StyleTitle renders headings such as a category name.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight renders emphasised values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink renders tool and demo URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning renders warnings and the highlight marker.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconInfo  = "›"
	iconArrow = "→"
)

// statusIcons maps a status line kind to its glyph and colour.
var statusIcons = map[string]string{
	"ok":   lipgloss.NewStyle().Foreground(colorGreen).Render("✓"),
	"err":  lipgloss.NewStyle().Foreground(colorRed).Render("✗"),
	"warn": lipgloss.NewStyle().Foreground(colorYellow).Render("!"),
	"info": lipgloss.NewStyle().Foreground(colorGray).Render(iconInfo),
}

// =============================================================================
// Status lines
// =============================================================================

func status(kind, msg string) {
	fmt.Fprintln(stdout, statusIcons[kind]+" "+msg)
}

func printSuccess(format string, args ...any) { status("ok", fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { status("err", fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { status("info", fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	status("warn", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written artifact path.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints the catalog size and whether the result came from the
// cache, e.g. "8 categories · 32 tools · cached".
func printStats(categories, tools int, cached bool) {
	origin := lipgloss.NewStyle().Foreground(colorGray).Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}
	sep := StyleDim.Render(" · ")
	fmt.Fprintln(stdout, "  "+strings.Join([]string{
		StyleDim.Render(fmt.Sprintf("%d categories", categories)),
		StyleDim.Render(fmt.Sprintf("%d tools", tools)),
		origin,
	}, sep))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() { fmt.Fprintln(stdout) }

// =============================================================================
// Catalog glyphs
// =============================================================================

// swatch renders a dot in the given hex colour.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

// stars renders a 1-5 rating as filled and empty stars.
func stars(rating int) string {
	return StyleWarning.Render(strings.Repeat("★", rating)) + StyleDim.Render(strings.Repeat("☆", 5-rating))
}

// bar renders a share in [0, 1] as a bar of the given width.
func bar(share float64, width int, hex string) string {
	n := min(max(int(share*float64(width)+0.5), 0), width)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(strings.Repeat("█", n)) +
		StyleDim.Render(strings.Repeat("░", width-n))
}
