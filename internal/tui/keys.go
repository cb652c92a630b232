package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	// Demo triggers
	Info      key.Binding
	Success   key.Binding
	Error     key.Binding
	Countdown key.Binding
	Undo      key.Binding

	// Actions
	Compose    key.Binding
	Invoke     key.Binding
	Copy       key.Binding
	DismissAll key.Binding
	Back       key.Binding

	// Global
	ToggleMenu key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMenu, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Info, k.Success, k.Error, k.Countdown, k.Undo},
		{k.Compose, k.Invoke, k.Copy, k.DismissAll},
		{k.ToggleMenu, k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Info: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "info toast"),
		),
		Success: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "success toast"),
		),
		Error: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "error toast"),
		),
		Countdown: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "countdown toast"),
		),
		Undo: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "undoable delete"),
		),
		Compose: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "compose toast"),
		),
		Invoke: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "trigger action"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy newest toast"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dismiss all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		ToggleMenu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
