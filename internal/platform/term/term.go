// Package term provides a tcell frontend: a plain select loop over terminal
// events and a wall-clock ticker, drawing the shared board renderer's output
// cell by cell.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/schedule"
)

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightRed:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// keyName converts a tcell key event to the key notation core binds actions to.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// painter copies the board renderer's screen onto the terminal, centered.
// It is the controller's Renderer.
type painter struct {
	screen tcell.Screen
	board  *snake.BoardRenderer
}

func (p *painter) Draw(s snake.Snapshot) {
	p.board.Draw(s)
	buf := p.board.Screen()

	p.screen.Clear()
	sw, sh := p.screen.Size()
	if sw < buf.Width() || sh < buf.Height() {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", buf.Width(), buf.Height())
		for i, r := range []rune(msg) {
			p.screen.SetContent(i, 0, r, nil, colorStyles[core.ColorBrightRed])
		}
		p.screen.Show()
		return
	}

	ox := (sw - buf.Width()) / 2
	oy := (sh - buf.Height()) / 2
	for y := range buf.Height() {
		for x := range buf.Width() {
			cell := buf.GetCell(x, y)
			style, ok := colorStyles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			p.screen.SetContent(ox+x, oy+y, cell.Rune, nil, style)
		}
	}
	p.screen.Show()
}

// session is one game on one tcell screen.
type session struct {
	screen  tcell.Screen
	ticker  *schedule.Ticker
	painter *painter
	ctrl    *snake.Controller
}

func newSession(screen tcell.Screen, env registry.Env) (*session, error) {
	ticker := schedule.NewTicker()
	p := &painter{
		screen: screen,
		board:  snake.NewBoardRenderer(core.NewScreen(1, 1), env.Config.GlyphRunes()),
	}
	ctrl, err := snake.New(env.ControllerOptions(
		snake.WithScheduler(ticker),
		snake.WithRenderer(p),
	)...)
	if err != nil {
		return nil, err
	}
	return &session{screen: screen, ticker: ticker, painter: p, ctrl: ctrl}, nil
}

func (s *session) paint() {
	s.painter.Draw(s.ctrl.Snapshot())
}

// tick runs one controller step. The controller repaints surviving ticks
// itself; a tick that ends the round needs the overlay drawn here.
func (s *session) tick() {
	s.ctrl.Tick()
	if s.ctrl.Lifecycle() != snake.LifecycleRunning {
		s.paint()
	}
}

// handle processes one terminal event and reports whether the player quit.
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.paint()
	case *tcell.EventKey:
		action := core.ActionForKey(keyName(ev))
		if action == core.ActionQuit {
			return true
		}
		if action != core.ActionNone {
			s.ctrl.Handle(action)
			s.paint()
		}
	}
	return false
}

// loop runs until the player quits, ctx is cancelled or the event channel
// closes.
func (s *session) loop(ctx context.Context, events <-chan tcell.Event) {
	defer s.ticker.Close()

	s.paint()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ticker.C():
			s.tick()
		case ev, ok := <-events:
			if !ok || s.handle(ev) {
				return
			}
		}
	}
}

// Frontend runs the game on a raw tcell screen.
type Frontend struct{}

func init() {
	registry.Register("term", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "term" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (tcell)" }

// Run takes over the terminal until the player quits or ctx is cancelled.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	s, err := newSession(screen, env)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	s.loop(ctx, events)
	return nil
}
