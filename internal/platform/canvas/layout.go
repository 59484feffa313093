package canvas

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Canvas layout in logical pixels: a HUD strip, the board, then a panel of
// on-screen buttons for touch and mouse play.
const (
	hudHeight   = 24
	panelHeight = 112
	buttonSize  = 32
	buttonGap   = 4
	padding     = 8
)

// button is an on-screen control.
type button struct {
	Rect   core.Rect
	Action core.Action
	Label  string
}

// Caption returns the button text for the given game state. The pause
// button reads RESUME while the game is paused.
func (b button) Caption(state snake.Lifecycle) string {
	if b.Action == core.ActionPause && state == snake.LifecyclePaused {
		return "RESUME"
	}
	return b.Label
}

// minWidth fits the d-pad and the game buttons side by side.
const minWidth = 4*padding + 3*(buttonSize+buttonGap) + 3*buttonSize

// layout positions the board and buttons for a board of boardPx pixels.
// Boards narrower than the button panel are centered.
type layout struct {
	Width   int
	BoardPx int
	Board   core.Rect
	Buttons []button
}

func newLayout(boardPx int) layout {
	width := max(boardPx, minWidth)
	l := layout{
		Width:   width,
		BoardPx: boardPx,
		Board:   core.NewRect((width-boardPx)/2, hudHeight, boardPx, boardPx),
	}

	// D-pad on the left
	top := hudHeight + boardPx + padding
	step := buttonSize + buttonGap
	left := padding
	l.Buttons = append(l.Buttons,
		button{core.NewRect(left+step, top, buttonSize, buttonSize), core.ActionUp, "^"},
		button{core.NewRect(left, top+step, buttonSize, buttonSize), core.ActionLeft, "<"},
		button{core.NewRect(left+2*step, top+step, buttonSize, buttonSize), core.ActionRight, ">"},
		button{core.NewRect(left+step, top+2*step, buttonSize, buttonSize), core.ActionDown, "v"},
	)

	// Game buttons stacked on the right
	wide := 3 * buttonSize
	right := width - padding - wide
	l.Buttons = append(l.Buttons,
		button{core.NewRect(right, top, wide, buttonSize), core.ActionStart, "START"},
		button{core.NewRect(right, top+step, wide, buttonSize), core.ActionPause, "PAUSE"},
		button{core.NewRect(right, top+2*step, wide, buttonSize), core.ActionReset, "RESET"},
	)
	return l
}

// Size returns the logical canvas size.
func (l layout) Size() (w, h int) {
	return l.Width, hudHeight + l.BoardPx + panelHeight
}

// HitTest returns the action of the button under (x, y), if any.
func (l layout) HitTest(x, y int) core.Action {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Action
		}
	}
	return core.ActionNone
}
