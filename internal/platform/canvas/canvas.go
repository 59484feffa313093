// Package canvas provides a windowed frontend on Ebitengine. The board is
// drawn with vector shapes at the configured cell size, and an on-screen
// d-pad makes the game playable with a mouse or a touch screen.
package canvas

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/schedule"
)

var (
	bgColor     = color.RGBA{24, 24, 28, 255}
	boardColor  = color.RGBA{32, 32, 38, 255}
	gridColor   = color.RGBA{40, 40, 48, 255}
	headColor   = color.RGBA{80, 220, 120, 255}
	bodyColor   = color.RGBA{60, 180, 100, 255}
	foodColor   = color.RGBA{230, 70, 70, 255}
	buttonColor = color.RGBA{56, 56, 66, 255}
	shadeColor  = color.RGBA{0, 0, 0, 160}
)

// ebitenKeys maps core key names to Ebitengine keys. Names with no physical
// key here (upper-case letters, ctrl chords) are skipped.
var ebitenKeys = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"w":     ebiten.KeyW,
	"a":     ebiten.KeyA,
	"s":     ebiten.KeyS,
	"d":     ebiten.KeyD,
	" ":     ebiten.KeySpace,
	"p":     ebiten.KeyP,
	"enter": ebiten.KeyEnter,
	"r":     ebiten.KeyR,
	"q":     ebiten.KeyQ,
}

type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings builds the keyboard table from the shared core bindings.
func keyBindings() []keyBinding {
	actions := []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionPause, core.ActionStart, core.ActionReset, core.ActionQuit,
	}
	var out []keyBinding
	for _, a := range actions {
		for _, name := range core.KeysFor(a) {
			if k, ok := ebitenKeys[name]; ok {
				out = append(out, keyBinding{key: k, action: a})
			}
		}
	}
	return out
}

// Game implements ebiten.Game around a snake controller.
type Game struct {
	ctx    context.Context
	ctrl   *snake.Controller
	frames *schedule.Frames
	layout layout
	keys   []keyBinding
	cell   float32

	touches []ebiten.TouchID
}

// NewGame creates a canvas game from env. Ticks are driven by the frame
// clock; ctx cancellation ends the game loop.
func NewGame(ctx context.Context, env registry.Env) (*Game, error) {
	frames := schedule.NewFrames()
	ctrl, err := snake.New(env.ControllerOptions(snake.WithScheduler(frames))...)
	if err != nil {
		return nil, err
	}
	grid := ctrl.Settings().Grid
	return &Game{
		ctx:    ctx,
		ctrl:   ctrl,
		frames: frames,
		layout: newLayout(grid.PixelSize()),
		keys:   keyBindings(),
		cell:   float32(grid.CellSize),
	}, nil
}

// Update collects input and advances the frame clock.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, a := range g.inputActions() {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		g.ctrl.Handle(a)
	}

	g.frames.Elapse(time.Second / time.Duration(ebiten.TPS()))
	for g.frames.Fire() {
		g.ctrl.Tick()
	}
	return nil
}

// inputActions returns the actions triggered this frame by keys, mouse
// clicks and new touches, in that order.
func (g *Game) inputActions() []core.Action {
	var actions []core.Action
	for _, kb := range g.keys {
		if inpututil.IsKeyJustPressed(kb.key) {
			actions = append(actions, kb.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if a := g.layout.HitTest(ebiten.CursorPosition()); a != core.ActionNone {
			actions = append(actions, a)
		}
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if a := g.layout.HitTest(ebiten.TouchPosition(id)); a != core.ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	s := g.ctrl.Snapshot()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  High: %d", s.Score, s.HighScore), padding, 4)

	b := g.layout.Board
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), boardColor, false)
	for i := 1; i < s.Grid.Dimension; i++ {
		off := float32(i) * g.cell
		vector.StrokeLine(screen, float32(b.X)+off, float32(b.Y), float32(b.X)+off, float32(b.Bottom()), 1, gridColor, false)
		vector.StrokeLine(screen, float32(b.X), float32(b.Y)+off, float32(b.Right()), float32(b.Y)+off, 1, gridColor, false)
	}

	if s.HasFood {
		cx, cy := g.cellOrigin(s.Food)
		vector.DrawFilledCircle(screen, cx+g.cell/2, cy+g.cell/2, g.cell/2-1, foodColor, true)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		c := s.Snake[i]
		if !s.Grid.Contains(c) {
			continue
		}
		clr := bodyColor
		if i == 0 {
			clr = headColor
		}
		x, y := g.cellOrigin(c)
		vector.DrawFilledRect(screen, x+1, y+1, g.cell-2, g.cell-2, clr, false)
	}

	switch s.Lifecycle {
	case snake.LifecycleIdle:
		g.drawOverlay(screen, "SNAKE", "Enter or START to play")
	case snake.LifecyclePaused:
		g.drawOverlay(screen, "Paused", "P or PAUSE to continue")
	case snake.LifecycleGameOver:
		title := "Game Over"
		if s.Won() {
			title = "You Win!"
		}
		g.drawOverlay(screen, title, fmt.Sprintf("Score: %d", s.Score), "Enter or START to play again")
	}

	for _, btn := range g.layout.Buttons {
		r := btn.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonColor, false)
		caption := btn.Caption(s.Lifecycle)
		tx := r.X + (r.W-len(caption)*6)/2
		ty := r.Y + (r.H-16)/2
		ebitenutil.DebugPrintAt(screen, caption, tx, ty)
	}
}

func (g *Game) cellOrigin(c snake.Cell) (float32, float32) {
	b := g.layout.Board
	return float32(b.X) + float32(c.X)*g.cell, float32(b.Y) + float32(c.Y)*g.cell
}

// drawOverlay shades the board and prints centered lines. The debug font is
// 6×16 pixels per character.
func (g *Game) drawOverlay(screen *ebiten.Image, lines ...string) {
	b := g.layout.Board
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), shadeColor, false)

	lineHeight := 20
	y := b.Y + (b.H-len(lines)*lineHeight)/2
	for i, line := range lines {
		x := b.X + (b.W-len(line)*6)/2
		ebitenutil.DebugPrintAt(screen, line, x, y+i*lineHeight)
	}
}

// Layout keeps the logical canvas size; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Size()
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

func init() {
	registry.Register("canvas", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "canvas" }

// Title returns the display name.
func (Frontend) Title() string { return "Window (Ebitengine)" }

// Run opens the window and blocks until it closes, the player quits or ctx
// is cancelled.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	g, err := NewGame(ctx, env)
	if err != nil {
		return err
	}

	w, h := g.layout.Size()
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}
