package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the board's key bindings.
type KeyMap struct {
	Left  key.Binding // focus the lane to the left
	Right key.Binding
	Up    key.Binding // select the previous card
	Down  key.Binding

	// Keyboard equivalent of dragging the selected card one lane over.
	MoveLeft  key.Binding
	MoveRight key.Binding

	Cancel key.Binding // abort an active drag
	Help   key.Binding
	Quit   key.Binding
}

var DefaultKeyMap = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "lane left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "lane right"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("H", "shift+left", "<"),
		key.WithHelp("H/<", "move card left"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys("L", "shift+right", ">"),
		key.WithHelp("L/>", "move card right"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.MoveLeft, k.MoveRight, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.MoveLeft, k.MoveRight, k.Cancel},
		{k.Help, k.Quit},
	}
}
