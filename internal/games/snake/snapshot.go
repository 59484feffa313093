package snake

// Snapshot captures the complete game state for rendering and determinism
// testing. Snake is a copy, head first.
type Snapshot struct {
	Tick      uint64
	Lifecycle Lifecycle
	Outcome   Outcome
	Grid      Grid
	Snake     []Cell
	Heading   Heading
	Food      Cell
	HasFood   bool
	Score     int
	HighScore int
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Won reports whether the round ended with the board full.
func (s Snapshot) Won() bool {
	return s.Lifecycle == LifecycleGameOver && s.Outcome == OutcomeBoardFull
}

// Snapshot returns the current game snapshot.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Tick:      c.tick,
		Lifecycle: c.lifecycle,
		Outcome:   c.outcome,
		Grid:      c.settings.Grid,
		Snake:     c.body.Cells(),
		Heading:   c.heading,
		Food:      c.food,
		HasFood:   c.hasFood,
		Score:     c.score,
		HighScore: c.highScore,
	}
}
