package tui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/swimlane/internal/drag"
	"github.com/idilsaglam/swimlane/internal/lanes"
	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/seed"
	"github.com/idilsaglam/swimlane/internal/store"
	"github.com/idilsaglam/swimlane/internal/surface"
)

func newTestModel(t *testing.T, width, height int) (*Model, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	st, err := store.New(seed.Default(), logger)
	require.NoError(t, err)
	m, err := New(st, Options{Theme: "mono", Mouse: true, Logger: logger})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, &buf
}

func press(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

func motion(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
}

func release(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

func keyPress(m *Model, s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func laneOf(t *testing.T, m *Model, id string) model.Lane {
	t.Helper()
	it, ok := m.Snapshot().Find(id)
	require.True(t, ok)
	return it.Lane
}

func TestNewRendersThreeLaneContainers(t *testing.T) {
	m, _ := newTestModel(t, 90, 40)
	for i, l := range model.Lanes {
		c := m.surface.Container(drag.ContainerID(l))
		require.NotNil(t, c, l)
		require.Equal(t, i*30, c.Rect.X)
		require.Equal(t, len(lanes.View(m.Snapshot(), l)), c.Len())
	}
}

func TestMouseDragMovesCardThroughStore(t *testing.T) {
	m, logs := newTestModel(t, 90, 40)
	el := m.surface.Element(cardElementID("3"))
	require.NotNil(t, el)
	require.Equal(t, model.LaneBacklog, laneOf(t, m, "3"))

	press(m, el.Rect.X+1, el.Rect.Y)
	motion(m, 65, 10)
	release(m, 65, 10)

	require.NoError(t, m.err)
	require.Equal(t, model.LaneComplete, laneOf(t, m, "3"))
	require.Same(t, m.surface.Container("complete-lane"), m.surface.Element(cardElementID("3")).Parent())
	require.Contains(t, logs.String(), `"msg":"lane changed"`)
	require.Contains(t, m.status, "Complete")
	require.Equal(t, model.LaneComplete.Index(), m.focus)
}

func TestDropIntoSourceLaneLeavesBoardAlone(t *testing.T) {
	m, logs := newTestModel(t, 90, 40)
	before := m.Snapshot()
	el := m.surface.Element(cardElementID("3"))

	press(m, el.Rect.X+1, el.Rect.Y)
	release(m, el.Rect.X+1, el.Rect.Y+12)

	require.NoError(t, m.err)
	require.True(t, before.Equal(m.Snapshot()))
	require.NotContains(t, logs.String(), "lane changed")
	require.Equal(t, []string{"3", "6", "7"}, firstIDs(m.surface.Container("backlog-lane").Children(), 3))
}

func TestReleaseOutsideLanesIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, 90, 40)
	before := m.Snapshot()
	el := m.surface.Element(cardElementID("1"))

	press(m, el.Rect.X+1, el.Rect.Y)
	release(m, 40, 0)

	require.True(t, before.Equal(m.Snapshot()))
	_, dragging := m.engine.Dragging()
	require.False(t, dragging)
}

func TestEscCancelsDragBeforeQuitting(t *testing.T) {
	m, _ := newTestModel(t, 90, 40)
	el := m.surface.Element(cardElementID("1"))
	press(m, el.Rect.X+1, el.Rect.Y)
	motion(m, 70, 10)

	require.Nil(t, keyPress(m, "esc"))
	_, dragging := m.engine.Dragging()
	require.False(t, dragging)

	cmd := keyPress(m, "esc")
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestKeyboardMoveUsesSamePath(t *testing.T) {
	m, logs := newTestModel(t, 90, 40)
	it, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "3", it.ID)

	keyPress(m, "L")
	require.Equal(t, model.LaneInProgress, laneOf(t, m, "3"))
	require.Equal(t, model.LaneInProgress.Index(), m.focus)
	sel, _ := m.Selected()
	require.Equal(t, "3", sel.ID)

	keyPress(m, "L")
	keyPress(m, "L") // already in the last lane
	require.Equal(t, model.LaneComplete, laneOf(t, m, "3"))
	require.Equal(t, 2, strings.Count(logs.String(), "lane changed"))

	keyPress(m, "H")
	require.Equal(t, model.LaneInProgress, laneOf(t, m, "3"))
}

func TestKeyboardNavigation(t *testing.T) {
	m, _ := newTestModel(t, 90, 40)
	keyPress(m, "j")
	sel, _ := m.Selected()
	require.Equal(t, "6", sel.ID)

	keyPress(m, "l")
	require.Equal(t, 1, m.focus)
	sel, _ = m.Selected()
	require.Equal(t, "1", sel.ID)

	keyPress(m, "h")
	keyPress(m, "h")
	require.Equal(t, 0, m.focus)
}

func TestClickSelectsCard(t *testing.T) {
	m, _ := newTestModel(t, 90, 40)
	el := m.surface.Element(cardElementID("4"))
	press(m, el.Rect.X+1, el.Rect.Y)
	release(m, el.Rect.X+1, el.Rect.Y)

	sel, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "4", sel.ID)
	require.Equal(t, model.LaneInProgress, laneOf(t, m, "4"))
}

func TestWheelScrollsLaneUnderPointer(t *testing.T) {
	m, _ := newTestModel(t, 90, 20)
	require.Equal(t, 4, len(m.boxes[0].cards))

	m.Update(tea.MouseMsg{X: 5, Y: 8, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	require.Equal(t, 1, m.offsets[0])
	require.Equal(t, "6", m.boxes[0].cards[0].item.ID)
	require.Nil(t, m.surface.Element(cardElementID("3")), "scrolled out cards are not hit targets")

	for i := 0; i < 20; i++ {
		m.Update(tea.MouseMsg{X: 5, Y: 8, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	require.Equal(t, 11-4, m.offsets[0])

	m.Update(tea.MouseMsg{X: 5, Y: 8, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	require.Equal(t, 11-5, m.offsets[0])
}

func TestCursorScrollsIntoView(t *testing.T) {
	m, _ := newTestModel(t, 90, 20)
	for i := 0; i < 5; i++ {
		keyPress(m, "j")
	}
	require.Equal(t, 5, m.cursor[0])
	require.Equal(t, 2, m.offsets[0])
}

func TestViewShowsLanes(t *testing.T) {
	m, _ := newTestModel(t, 90, 40)
	out := m.View()
	require.Contains(t, out, "Backlog (11)")
	require.Contains(t, out, "In Progress (5)")
	require.Contains(t, out, "Complete (4)")
	require.Contains(t, out, "Nolan LLC")
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t, 20, 5)
	require.Contains(t, m.View(), "terminal too small")
}

func firstIDs(els []*surface.Element, n int) []string {
	var out []string
	for _, e := range els[:min(n, len(els))] {
		out = append(out, e.Attr(drag.ItemAttr))
	}
	return out
}

func TestScrollDuringDragEndsDrag(t *testing.T) {
	m, logs := newTestModel(t, 90, 20)
	el := m.surface.Element(cardElementID("3"))
	require.NotNil(t, el)

	press(m, el.Rect.X+1, el.Rect.Y)
	motion(m, 65, 8)
	m.Update(tea.MouseMsg{X: 5, Y: 8, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	_, dragging := m.engine.Dragging()
	require.False(t, dragging)

	release(m, 65, 8)
	require.NoError(t, m.err)
	require.Equal(t, model.LaneBacklog, laneOf(t, m, "3"))
	require.NotContains(t, logs.String(), "render failed")

	// The board keeps working after the interrupted drag.
	el = m.surface.Element(cardElementID("6"))
	require.NotNil(t, el)
	press(m, el.Rect.X+1, el.Rect.Y)
	motion(m, 65, 8)
	release(m, 65, 8)
	require.NoError(t, m.err)
	require.Equal(t, model.LaneComplete, laneOf(t, m, "6"))
}

func TestResizeDuringDragEndsDrag(t *testing.T) {
	m, logs := newTestModel(t, 90, 40)
	backlog := lanes.View(m.Snapshot(), model.LaneBacklog)
	last := backlog[len(backlog)-1].ID
	el := m.surface.Element(cardElementID(last))
	require.NotNil(t, el)

	press(m, el.Rect.X+1, el.Rect.Y)
	motion(m, 65, 8)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 20})
	require.Nil(t, m.surface.Element(cardElementID(last)))

	release(m, 65, 8)
	require.NoError(t, m.err)
	require.Equal(t, model.LaneBacklog, laneOf(t, m, last))
	require.NotContains(t, logs.String(), "render failed")
}

func TestScrollDuringDragKeepsVisibleCard(t *testing.T) {
	m, _ := newTestModel(t, 90, 20)
	el := m.surface.Element(cardElementID("6"))
	require.NotNil(t, el)

	press(m, el.Rect.X+1, el.Rect.Y)
	motion(m, 65, 8)
	// Scrolling the complete lane leaves card 6 on screen.
	m.Update(tea.MouseMsg{X: 65, Y: 8, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	_, dragging := m.engine.Dragging()
	require.True(t, dragging)

	release(m, 65, 8)
	require.NoError(t, m.err)
	require.Equal(t, model.LaneComplete, laneOf(t, m, "6"))
}
