package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the command keys of the runner screen. Movement keys come
// from the config bindings; the entries here only describe them for help.
type KeyMap struct {
	Move    key.Binding
	Speed   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Save    key.Binding
	Skip    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Speed, k.Pause, k.Restart, k.Save, k.Skip, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Speed},
		{k.Pause, k.Restart, k.Quit},
		{k.Save, k.Skip},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "a", "d"),
			key.WithHelp("←/→", "steer"),
		),
		Speed: key.NewBinding(
			key.WithKeys("up", "down", "w", "s"),
			key.WithHelp("↑/↓", "speed"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save score"),
			key.WithDisabled(),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setPhase enables the bindings that apply to the current screen.
func (k *KeyMap) setPhase(running, entering bool) {
	k.Move.SetEnabled(running)
	k.Speed.SetEnabled(running)
	k.Pause.SetEnabled(running)
	k.Restart.SetEnabled(!running && !entering)
	k.Save.SetEnabled(entering)
	k.Skip.SetEnabled(entering)
	k.Quit.SetEnabled(!entering)
}

// keyName converts a Bubble Tea key into the browser-style name used by
// the input bindings ("left" becomes "arrowleft").
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyLeft:
		return "arrowleft"
	case tea.KeyRight:
		return "arrowright"
	case tea.KeyUp:
		return "arrowup"
	case tea.KeyDown:
		return "arrowdown"
	case tea.KeySpace:
		return " "
	}
	return msg.String()
}
