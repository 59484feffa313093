package snake

// EventKind identifies a game event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventReset
	EventFoodEaten
	EventNewHighScore
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventReset:
		return "reset"
	case EventFoodEaten:
		return "food_eaten"
	case EventNewHighScore:
		return "new_high_score"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners synchronously, from inside the controller
// call that caused it.
type Event struct {
	Kind      EventKind
	Score     int
	HighScore int
	Outcome   Outcome
}

// Listener receives game events. Sound effects hang off this.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

func (c *Controller) emit(kind EventKind) {
	if len(c.listeners) == 0 {
		return
	}
	e := Event{
		Kind:      kind,
		Score:     c.score,
		HighScore: c.highScore,
		Outcome:   c.outcome,
	}
	for _, l := range c.listeners {
		l.OnEvent(e)
	}
}
