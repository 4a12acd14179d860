// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the main window.
type KeyMap struct {
	// Windows
	Preferences      key.Binding
	ClosePreferences key.Binding
	About            key.Binding
	Hotkeys          key.Binding
	CycleFocus       key.Binding

	// Dialogs
	CreateBranch key.Binding

	// General
	ToggleStatus key.Binding
	Log          key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Preferences: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preferences"),
		),
		ClosePreferences: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close preferences"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),
		Hotkeys: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hotkeys"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "cycle window focus"),
		),

		CreateBranch: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "create branch"),
		),

		ToggleStatus: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle status bar"),
		),
		Log: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "debug log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hotkeys, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Preferences, k.ClosePreferences, k.About, k.Hotkeys, k.CycleFocus},
		{k.CreateBranch},
		{k.ToggleStatus, k.Log, k.Quit},
	}
}

// DialogKeyMap defines the keybindings shared by framed windows.
type DialogKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
	Save    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
	Left    key.Binding
	Right   key.Binding
}

// Dialog holds the keybindings for framed windows.
var Dialog = DialogKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab/j", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("shift+tab/k", "previous"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/→", "right"),
	),
}
