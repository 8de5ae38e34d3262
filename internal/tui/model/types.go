package model

import (
	"github.com/charmbracelet/bubbles/key"
)

// Container is one entry of a runtime listing. HasStatus is false when the
// listing line carried only a name.
type Container struct {
	Name      string
	Status    string
	HasStatus bool
}

// Roster is the most recently observed container snapshot, in listing order.
type Roster []Container

// State is the panel's only mutable entity. It lives for the whole session.
type State struct {
	Roster Roster
	// Cursor indexes Roster; 0 <= Cursor < max(1, len(Roster)).
	Cursor int

	lastRequestID    uint64
	appliedRequestID uint64
}

// NewState returns the state of a freshly loaded panel: empty roster, cursor at 0.
func NewState() *State {
	return &State{}
}

// KeyMap defines all the key bindings the panel reacts to.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	Stop  key.Binding
	Exec  key.Binding
	Hide  key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter/l", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		Exec: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "shell"),
		),
		Hide: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "hide"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Stop, k.Exec, k.Hide}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Start, k.Stop, k.Exec},
		{k.Hide},
	}
}
