// Package keys contains keybinding definitions used for help text and
// host-level shortcuts. Editing keys themselves are interpreted by the
// editor package's transition table.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings shown to the user.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Modes
	Insert key.Binding
	Normal key.Binding

	// General
	Quit      key.Binding
	ToggleLog key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "move right"),
		),

		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert mode"),
		),
		Normal: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal mode"),
		),

		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		// Only active with --debug; the app enables it at startup.
		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "logs"),
			key.WithDisabled(),
		),
	}
}

// ShortHelp returns keybindings for the one-line help under the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Insert, k.Normal, k.ToggleLog}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right}, // Navigation
		{k.Insert, k.Normal},            // Modes
		{k.Quit, k.ToggleLog},           // General
	}
}
