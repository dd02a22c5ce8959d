package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/swimlane/internal/drag"
	"github.com/idilsaglam/swimlane/internal/lanes"
	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/ui"
)

func (m *Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return m.styles.muted.Render(fmt.Sprintf("terminal too small (%dx%d, need %dx%d)", m.width, m.height, minWidth, minHeight))
	}

	cols := make([]string, 0, len(m.boxes))
	for i, b := range m.boxes {
		cols = append(cols, m.viewLane(i, b))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		m.viewStatus(),
		m.help.View(m.keys),
	)
}

func (m *Model) viewHeader() string {
	counts := lanes.Counts(m.snap)
	parts := []string{m.styles.title.Render("Clients")}
	for i, l := range model.Lanes {
		parts = append(parts, m.styles.lane[l].Render(fmt.Sprintf("%s %d", l.Title(), counts[i])))
	}
	line := ui.Truncate(strings.Join(parts, "   "), m.width)
	done := counts[model.LaneComplete.Index()]
	bar := m.styles.muted.Render(ui.ProgressBar(done, m.snap.Len(), min(28, max(m.width-6, 5))))
	return line + "\n" + bar
}

func (m *Model) viewStatus() string {
	if m.err != nil {
		return m.styles.errorS.Render(ui.Truncate(m.err.Error(), m.width))
	}
	if el, ok := m.engine.Dragging(); ok {
		msg := "dragging " + el.Attr(drag.ItemAttr)
		if it, found := m.snap.Find(el.Attr(drag.ItemAttr)); found {
			msg = "dragging " + it.Name
		}
		if over := m.engine.Over(); over != nil {
			if lane, ok := drag.LaneKey(over.ID); ok {
				msg += " → " + lane.Title()
			}
		}
		return m.styles.muted.Render(ui.Truncate(msg, m.width))
	}
	return m.styles.muted.Render(ui.Truncate(m.status, m.width))
}

func (m *Model) viewLane(i int, b laneBox) string {
	innerW := max(b.rect.W-2, 1)
	innerH := max(b.rect.H-2, 1)

	title := fmt.Sprintf("%s (%d)", b.lane.Title(), len(b.items))
	if b.offset > 0 {
		title += " ↑"
	}
	if b.offset+len(b.cards) < len(b.items) {
		title += " ↓"
	}
	lines := []string{m.styles.lane[b.lane].Render(ui.Truncate(title, innerW))}

	dragged, dragging := m.engine.Dragging()
	for k, cb := range b.cards {
		if k > 0 {
			lines = append(lines, "")
		}
		nameStyle, descStyle := m.styles.name, m.styles.muted
		prefix := "  "
		switch {
		case dragging && dragged.Attr(drag.ItemAttr) == cb.item.ID:
			nameStyle, descStyle = m.styles.dragging, m.styles.dragging
		case i == m.focus && b.offset+k == m.cursor[i]:
			nameStyle = m.styles.selected
			prefix = "> "
		}
		lines = append(lines,
			prefix+nameStyle.Render(ui.Truncate(cb.item.Name, innerW-2)),
			"  "+descStyle.Render(ui.Truncate(cb.item.Description, innerW-2)),
		)
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	border := m.styles.border
	switch {
	case m.engine.Over() != nil && m.engine.Over().ID == drag.ContainerID(b.lane):
		border = m.styles.borderOver
	case i == m.focus:
		border = m.styles.borderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}
