// Package tui provides the Bubble Tea frontend: the terminal UI loop, key
// mapping and the tick source that drives the game controller.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/schedule"
)

// TickMsg is sent to trigger a game simulation tick. ID names the timer
// that produced it; ticks from a stopped timer are dropped.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after d.
func tickCmd(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// teaScheduler implements schedule.Scheduler on top of tea.Tick. Bubble Tea
// commands are one-shot, so a periodic timer is a chain: every delivered tick
// of the active timer queues the next one. Commands queue up in pending until
// the model hands them back to the runtime.
type teaScheduler struct {
	gen     uint64
	active  uint64 // 0 when idle
	period  time.Duration
	pending []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{}
}

// Every starts a new tick chain and invalidates the previous one.
func (s *teaScheduler) Every(period time.Duration) schedule.Timer {
	s.gen++
	s.active = s.gen
	s.period = period
	s.pending = append(s.pending, tickCmd(s.gen, period))
	return teaTimer{owner: s, id: s.gen}
}

// Due reports whether msg belongs to the active chain.
func (s *teaScheduler) Due(msg TickMsg) bool {
	return s.active != 0 && msg.ID == s.active
}

// Rearm queues the next tick of msg's chain if it is still active.
func (s *teaScheduler) Rearm(msg TickMsg) {
	if s.Due(msg) {
		s.pending = append(s.pending, tickCmd(msg.ID, s.period))
	}
}

// Active reports whether a chain is running.
func (s *teaScheduler) Active() bool {
	return s.active != 0
}

// Drain returns the queued commands as one batch.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

type teaTimer struct {
	owner *teaScheduler
	id    uint64
}

func (t teaTimer) Stop() {
	if t.owner.active == t.id {
		t.owner.active = 0
	}
}
