package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/swimlane/internal/model"
)

type styles struct {
	title    lipgloss.Style
	muted    lipgloss.Style
	errorS   lipgloss.Style
	selected lipgloss.Style
	dragging lipgloss.Style
	name     lipgloss.Style
	help     lipgloss.Style

	lane        map[model.Lane]lipgloss.Style
	border      lipgloss.TerminalColor
	borderFocus lipgloss.TerminalColor
	borderOver  lipgloss.TerminalColor
}

type palette struct {
	title, accent, success, pending, errorC, border string
}

var palettes = map[string]palette{
	"classic": {title: "15", accent: "12", success: "42", pending: "214", errorC: "9", border: "8"},
	"neon":    {title: "201", accent: "51", success: "46", pending: "226", errorC: "196", border: "93"},
}

func color(c string) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}

// newStyles builds the board styles for a theme name. Unknown names and
// "mono" fall back to attribute-only styling.
func newStyles(theme string) styles {
	p := palettes[strings.ToLower(theme)]
	if theme == "" {
		p = palettes["classic"]
	}
	s := styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(color(p.title)),
		muted:    lipgloss.NewStyle().Faint(true),
		errorS:   lipgloss.NewStyle().Foreground(color(p.errorC)).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		dragging: lipgloss.NewStyle().Faint(true).Italic(true),
		name:     lipgloss.NewStyle().Bold(true),
		help:     lipgloss.NewStyle().Faint(true),

		border:      color(p.border),
		borderFocus: color(p.accent),
		borderOver:  color(p.success),
	}
	s.lane = map[model.Lane]lipgloss.Style{
		model.LaneBacklog:    lipgloss.NewStyle().Bold(true).Foreground(color(p.accent)),
		model.LaneInProgress: lipgloss.NewStyle().Bold(true).Foreground(color(p.pending)),
		model.LaneComplete:   lipgloss.NewStyle().Bold(true).Foreground(color(p.success)),
	}
	return s
}
