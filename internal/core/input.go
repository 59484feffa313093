package core

// Action is a semantic input intent, abstracted from physical keys, buttons
// and touches. Every frontend translates its native events into Actions and
// delivers each one as a discrete event.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionPause        // Space, P - toggles pause/resume
	ActionStart        // Enter - start or play again
	ActionReset        // R
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four direction intents.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// keyBindings lists the key names bound to each action, in Bubble Tea
// key-string notation ("up", "ctrl+c", " ").
var keyBindings = map[Action][]string{
	ActionUp:    {"up", "w", "W"},
	ActionDown:  {"down", "s", "S"},
	ActionLeft:  {"left", "a", "A"},
	ActionRight: {"right", "d", "D"},
	ActionPause: {" ", "p", "P"},
	ActionStart: {"enter"},
	ActionReset: {"r", "R"},
	ActionQuit:  {"q", "Q", "ctrl+c"},
}

var keyIndex = func() map[string]Action {
	idx := make(map[string]Action)
	for a, keys := range keyBindings {
		for _, k := range keys {
			idx[k] = a
		}
	}
	return idx
}()

// KeysFor returns the key names bound to an action.
func KeysFor(a Action) []string {
	keys := keyBindings[a]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// ActionForKey maps a key name to its action, or ActionNone when unbound.
func ActionForKey(key string) Action {
	return keyIndex[key]
}
