package ui

import (
	"strings"

	"github.com/idilsaglam/swimlane/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	Pending                                string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymCard                                string
}

// Themes lists the accepted theme names; the first is the default.
var Themes = []string{"classic", "neon", "mono"}

// ValidTheme reports whether name is a known theme. Empty means default.
func ValidTheme(name string) bool {
	if name == "" {
		return true
	}
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:  "classic",
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymCard: "•",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		disableColor = false
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymCard: "◆",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:     "mono",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymCard: "-",
		}
	default: // classic
		disableColor = false
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

// LaneColor is the accent used for a lane's heading.
func (t Theme) LaneColor(l model.Lane) string {
	switch l {
	case model.LaneInProgress:
		return t.Pending
	case model.LaneComplete:
		return t.Success
	}
	return t.Accent
}
