package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings of the game screen. Game actions are bound
// to the keys core assigns them, so every frontend shares one layout.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Start      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Reset},
		{k.Screenshot, k.Quit},
	}
}

func actionBinding(a core.Action, desc string) key.Binding {
	keys := core.KeysFor(a)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys formats bound keys for display, skipping upper-case duplicates.
func helpKeys(keys []string) string {
	shown := make([]string, 0, len(keys))
	for _, k := range keys {
		switch {
		case k == " ":
			shown = append(shown, "space")
		case len(k) == 1 && strings.ToLower(k) != k:
			continue
		default:
			shown = append(shown, k)
		}
	}
	return strings.Join(shown, "/")
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         actionBinding(core.ActionUp, "up"),
		Down:       actionBinding(core.ActionDown, "down"),
		Left:       actionBinding(core.ActionLeft, "left"),
		Right:      actionBinding(core.ActionRight, "right"),
		Pause:      actionBinding(core.ActionPause, "pause"),
		Start:      actionBinding(core.ActionStart, "start"),
		Reset:      actionBinding(core.ActionReset, "reset"),
		Quit:       actionBinding(core.ActionQuit, "quit"),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	}
	return core.ActionNone
}
