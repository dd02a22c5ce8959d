// Package tui is the interactive board. Every state change re-renders the
// lanes from the store's current snapshot; mouse drags go through the
// gesture engine and the drag coordinator, never straight into the layout.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/swimlane/internal/drag"
	"github.com/idilsaglam/swimlane/internal/gesture"
	"github.com/idilsaglam/swimlane/internal/lanes"
	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/store"
	"github.com/idilsaglam/swimlane/internal/surface"
)

// Options tune the board.
type Options struct {
	Theme  string
	Mouse  bool
	Logger *slog.Logger
}

// Model is the Bubble Tea model for the board.
type Model struct {
	store   *store.Store
	snap    store.Collection
	surface *surface.Surface
	engine  *gesture.Engine
	coord   *drag.Coordinator
	logger  *slog.Logger

	keys   KeyMap
	help   help.Model
	styles styles

	width, height int
	boxes         [3]laneBox
	offsets       [3]int
	focus         int    // index into model.Lanes
	cursor        [3]int // selected card per lane, index into the lane view

	status string
	err    error
}

// New builds the board over st and attaches the drag coordinator to the
// three lane containers of the first render.
func New(st *store.Store, opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		store:   st,
		snap:    st.Snapshot(),
		surface: surface.New(),
		engine:  gesture.New(),
		logger:  logger,
		keys:    DefaultKeyMap,
		help:    help.New(),
		styles:  newStyles(opts.Theme),
		width:   80,
		height:  24,
	}
	m.help.Styles.ShortKey = m.styles.help
	m.help.Styles.ShortDesc = m.styles.help
	m.help.Styles.FullKey = m.styles.help
	m.help.Styles.FullDesc = m.styles.help
	m.sync()

	containers := make([]*surface.Container, 0, len(model.Lanes))
	for _, l := range model.Lanes {
		containers = append(containers, m.surface.Container(drag.ContainerID(l)))
	}
	coord, err := drag.Attach(m.engine, containers, m.moveItem, logger)
	if err != nil {
		return nil, err
	}
	m.coord = coord
	return m, nil
}

// Run starts the board and blocks until the user quits.
func Run(st *store.Store, opts Options) error {
	m, err := New(st, opts)
	if err != nil {
		return err
	}
	defer m.coord.Detach()

	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	_, err = tea.NewProgram(m, popts...).Run()
	return err
}

// Snapshot is the collection the board is currently showing.
func (m *Model) Snapshot() store.Collection { return m.snap }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		return m, nil
	}
	m.sync()
	return m, cmd
}

// moveItem is the single path from a move intent, mouse or keyboard, to the
// store. The board re-renders from the returned snapshot on the next sync.
func (m *Model) moveItem(id string, lane model.Lane) {
	snap, changed := m.store.Reassign(id, lane)
	m.snap = snap
	if !changed {
		return
	}
	it, _ := snap.Find(id)
	m.status = fmt.Sprintf("Moved %s to %s", it.Name, lane.Title())
	m.err = nil

	// Selection follows the card.
	m.focus = lane.Index()
	for i, x := range lanes.View(snap, lane) {
		if x.ID == id {
			m.cursor[m.focus] = i
			break
		}
	}
	m.ensureVisible()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionRelease:
		m.engine.Release(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		m.engine.Move(msg.X, msg.Y)
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollAt(msg.X, msg.Y, -1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollAt(msg.X, msg.Y, 1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.selectAt(msg.X, msg.Y)
		m.engine.Press(msg.X, msg.Y)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if _, dragging := m.engine.Dragging(); dragging {
			m.engine.Cancel(true)
			return nil
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.focus = max(m.focus-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.focus = min(m.focus+1, len(model.Lanes)-1)
	case key.Matches(msg, m.keys.Up):
		m.cursor[m.focus]--
		m.ensureVisible()
	case key.Matches(msg, m.keys.Down):
		m.cursor[m.focus]++
		m.ensureVisible()
	case key.Matches(msg, m.keys.MoveLeft):
		m.moveSelected(-1)
	case key.Matches(msg, m.keys.MoveRight):
		m.moveSelected(1)
	}
	return nil
}

// Selected returns the card under the keyboard cursor.
func (m *Model) Selected() (model.Item, bool) {
	items := lanes.View(m.snap, model.Lanes[m.focus])
	i := m.cursor[m.focus]
	if i < 0 || i >= len(items) {
		return model.Item{}, false
	}
	return items[i], true
}

func (m *Model) moveSelected(delta int) {
	it, ok := m.Selected()
	if !ok {
		return
	}
	to := m.focus + delta
	if to < 0 || to >= len(model.Lanes) {
		return
	}
	m.moveItem(it.ID, model.Lanes[to])
}

func (m *Model) selectAt(x, y int) {
	c := m.surface.ContainerAt(x, y)
	if c == nil {
		return
	}
	lane, ok := drag.LaneKey(c.ID)
	if !ok {
		return
	}
	m.focus = lane.Index()
	e := m.surface.ElementAt(x, y)
	if e == nil || e.Parent() != c {
		return
	}
	for i, it := range lanes.View(m.snap, lane) {
		if it.ID == e.Attr(drag.ItemAttr) {
			m.cursor[m.focus] = i
			return
		}
	}
}

func (m *Model) scrollAt(x, y, delta int) {
	c := m.surface.ContainerAt(x, y)
	if c == nil {
		return
	}
	if lane, ok := drag.LaneKey(c.ID); ok {
		m.offsets[lane.Index()] += delta
	}
}

// ensureVisible clamps the focused cursor and scrolls its lane to show it.
func (m *Model) ensureVisible() {
	n := len(lanes.View(m.snap, model.Lanes[m.focus]))
	c := min(max(m.cursor[m.focus], 0), max(n-1, 0))
	m.cursor[m.focus] = c

	visible := visibleCards(m.bodyHeight())
	off := m.offsets[m.focus]
	if c < off {
		off = c
	}
	if visible > 0 && c >= off+visible {
		off = c - visible + 1
	}
	m.offsets[m.focus] = off
}

func (m *Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

func (m *Model) bodyHeight() int {
	return max(m.height-headerHeight-m.footerHeight(), 0)
}

// sync recomputes the layout from the current snapshot and re-renders the
// surface. A stale surface means something moved a card behind the board's
// back; it is logged and the surface is rebuilt from scratch.
func (m *Model) sync() {
	m.boxes = computeLayout(m.snap, m.width, m.bodyHeight(), m.offsets)
	for i, b := range m.boxes {
		m.offsets[i] = b.offset
		m.cursor[i] = min(max(m.cursor[i], 0), max(len(b.items)-1, 0))
	}
	specs := containerSpecs(m.boxes)
	if el, dragging := m.engine.Dragging(); dragging && !hasElement(specs, el.ID) {
		// The dragged card scrolled out of its lane; the drag ends with it.
		m.engine.Cancel(false)
	}
	if err := m.surface.Render(specs); err != nil {
		m.logger.Error("render failed", "error", err)
		m.err = err
		m.engine.Cancel(false)
		m.surface.Reset()
		if err := m.surface.Render(specs); err != nil {
			m.logger.Error("render failed after reset", "error", err)
		}
	}
}

func hasElement(specs []surface.ContainerSpec, id string) bool {
	for _, cs := range specs {
		for _, es := range cs.Elements {
			if es.ID == id {
				return true
			}
		}
	}
	return false
}
