package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs are the runes used to draw the board on a character screen.
type Glyphs struct {
	Head rune
	Body rune
	Food rune
}

// DefaultGlyphs returns the classic look.
func DefaultGlyphs() Glyphs {
	return Glyphs{Head: '@', Body: 'o', Food: '*'}
}

// Board layout on a character screen. Each cell is two columns wide so the
// board looks square in a terminal.
const (
	hudRow       = 0
	separatorRow = 1
	boardTop     = 2 // Top border row
	cellColumns  = 2
)

// LayoutSize returns the screen size needed to draw a dim×dim board with its
// HUD and border.
func LayoutSize(dim int) (w, h int) {
	return dim*cellColumns + 3, dim + 4
}

// BoardRenderer draws snapshots onto a core.Screen. It implements Renderer,
// so a controller can draw straight into the screen a frontend displays.
type BoardRenderer struct {
	screen *core.Screen
	glyphs Glyphs
}

// NewBoardRenderer creates a renderer targeting screen.
func NewBoardRenderer(screen *core.Screen, glyphs Glyphs) *BoardRenderer {
	return &BoardRenderer{screen: screen, glyphs: glyphs}
}

// Screen returns the target screen.
func (r *BoardRenderer) Screen() *core.Screen {
	return r.screen
}

// Draw renders s onto the target screen, resizing it to fit the board.
func (r *BoardRenderer) Draw(s Snapshot) {
	w, h := LayoutSize(s.Grid.Dimension)
	r.screen.Resize(w, h)
	r.Render(r.screen, s)
}

// Render draws s onto dst.
func (r *BoardRenderer) Render(dst *core.Screen, s Snapshot) {
	dst.Clear()

	r.renderHUD(dst, s)

	dim := s.Grid.Dimension
	border := core.NewRect(0, boardTop, dim*cellColumns+3, dim+2)
	dst.DrawBox(border, core.ColorGray)

	if s.HasFood {
		r.setCell(dst, s.Grid, s.Food, r.glyphs.Food, core.ColorRed)
	}

	// Tail first so the head wins when cells overlap after a self collision
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.setCell(dst, s.Grid, s.Snake[i], r.glyphs.Head, core.ColorBrightGreen)
		} else {
			r.setCell(dst, s.Grid, s.Snake[i], r.glyphs.Body, core.ColorGreen)
		}
	}

	switch s.Lifecycle {
	case LifecycleIdle:
		r.renderOverlay(dst, border, core.ColorCyan, "SNAKE", "Press Enter to start")
	case LifecyclePaused:
		r.renderOverlay(dst, border, core.ColorYellow, "Paused", "Press P to continue")
	case LifecycleGameOver:
		title := "Game Over"
		c := core.ColorBrightRed
		if s.Won() {
			title = "You Win!"
			c = core.ColorBrightYellow
		}
		r.renderOverlay(dst, border, c, title, fmt.Sprintf("Score: %d", s.Score), "Enter to play again")
	}
}

// setCell draws a board cell, clipping anything off the board such as a head
// that just hit the wall.
func (r *BoardRenderer) setCell(dst *core.Screen, g Grid, c Cell, ch rune, col core.Color) {
	if !g.Contains(c) {
		return
	}
	x, y := ScreenPos(c)
	dst.SetColored(x, y, ch, col)
}

// ScreenPos returns the screen coordinates of a board cell.
func ScreenPos(c Cell) (x, y int) {
	return 2 + c.X*cellColumns, boardTop + 1 + c.Y
}

// renderHUD draws the status line and separator.
func (r *BoardRenderer) renderHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Score: %d  High: %d", s.Score, s.HighScore)
	dst.DrawTextColored(0, hudRow, hud, core.ColorWhite)

	state := s.Lifecycle.String()
	if s.Lifecycle == LifecycleGameOver {
		state = "over"
	}
	dst.DrawTextColored(dst.Width()-len(state)-1, hudRow, state, core.ColorGray)

	dst.DrawHLine(0, separatorRow, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a boxed message centered on the board.
func (r *BoardRenderer) renderOverlay(dst *core.Screen, board core.Rect, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := board.Centered(maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
