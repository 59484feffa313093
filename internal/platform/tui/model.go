package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Model is the Bubble Tea model for playing snake.
type Model struct {
	ctrl     *snake.Controller
	sched    *teaScheduler
	board    *snake.BoardRenderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	status   string // Transient footer message
	quitting bool
}

// NewModel creates a model around a fresh controller built from env. The
// controller ticks through Bubble Tea commands.
func NewModel(env registry.Env) (Model, error) {
	sched := newTeaScheduler()
	ctrl, err := snake.New(env.ControllerOptions(snake.WithScheduler(sched))...)
	if err != nil {
		return Model{}, err
	}

	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		ctrl:   ctrl,
		sched:  sched,
		board:  snake.NewBoardRenderer(core.NewScreen(1, 1), env.Config.GlyphRunes()),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}, nil
}

// Controller returns the game controller.
func (m Model) Controller() *snake.Controller {
	return m.ctrl
}

// Init waits for the player; the first tick is armed by Start.
func (m Model) Init() tea.Cmd {
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.status = ""
		m.ctrl.Handle(action)
	}
	return m, m.sched.Drain()
}

// handleTick runs one controller step for a live tick and re-arms the chain.
// Ticks left over from a paused or finished round are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Due(msg) {
		return m, nil
	}
	m.ctrl.Tick()
	m.sched.Rearm(msg)
	return m, m.sched.Drain()
}

// saveScreenshot writes the current board as plain text and returns a status
// line for the footer.
func (m Model) saveScreenshot() string {
	m.board.Draw(m.ctrl.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.board.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()
	bw, bh := snake.LayoutSize(snap.Grid.Dimension)
	if m.width > 0 && (m.width < bw || m.height < bh+1) {
		return errorStyle.Render("Terminal too small") + "\n" +
			hintStyle.Render(fmt.Sprintf("need %dx%d, have %dx%d", bw, bh+1, m.width, m.height))
	}

	m.board.Draw(snap)
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = hintStyle.Render(m.status)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.board.Screen()), footer)

	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Frontend runs the game in the terminal through Bubble Tea.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits or ctx
// is cancelled.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui: stdout is not a terminal")
	}

	model, err := NewModel(env)
	if err != nil {
		return err
	}

	// The view copes with a small terminal, but say so in the log up front
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		bw, bh := snake.LayoutSize(env.Config.Grid.Dimension)
		if w < bw || h < bh+1 {
			model.logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", bw, bh+1))
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
