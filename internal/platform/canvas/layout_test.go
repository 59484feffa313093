package canvas

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/schedule"
)

func TestLayoutSize(t *testing.T) {
	l := newLayout(400)
	w, h := l.Size()
	if w != 400 || h != hudHeight+400+panelHeight {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if l.Board != core.NewRect(0, hudHeight, 400, 400) {
		t.Errorf("Board = %+v", l.Board)
	}
}

func TestLayoutSmallBoardCentered(t *testing.T) {
	l := newLayout(40)
	w, _ := l.Size()
	if w != minWidth {
		t.Errorf("width = %d, want %d", w, minWidth)
	}
	if l.Board.X != (minWidth-40)/2 {
		t.Errorf("Board.X = %d, want centered", l.Board.X)
	}
}

func TestLayoutButtonsInsidePanel(t *testing.T) {
	for _, px := range []int{40, 400} {
		checkPanel(t, newLayout(px))
	}
}

func checkPanel(t *testing.T, l layout) {
	t.Helper()
	w, h := l.Size()
	panel := core.NewRect(0, l.Board.Bottom(), w, h-l.Board.Bottom())

	for _, b := range l.Buttons {
		r := b.Rect
		if !panel.Contains(r.X, r.Y) || !panel.Contains(r.Right()-1, r.Bottom()-1) {
			t.Errorf("button %s at %+v outside panel %+v", b.Label, r, panel)
		}
		for _, o := range l.Buttons {
			if o.Label != b.Label && o.Rect.Contains(r.X, r.Y) {
				t.Errorf("buttons %s and %s overlap", b.Label, o.Label)
			}
		}
	}
}

func TestLayoutHitTest(t *testing.T) {
	l := newLayout(400)

	seen := map[core.Action]bool{}
	for _, b := range l.Buttons {
		cx, cy := b.Rect.Center()
		if got := l.HitTest(cx, cy); got != b.Action {
			t.Errorf("HitTest(center of %s) = %v, want %v", b.Label, got, b.Action)
		}
		seen[b.Action] = true
	}

	for _, a := range []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionStart, core.ActionPause, core.ActionReset,
	} {
		if !seen[a] {
			t.Errorf("no button for %v", a)
		}
	}

	if got := l.HitTest(200, 200); got != core.ActionNone {
		t.Errorf("HitTest on the board = %v, want none", got)
	}
}

func TestKeyBindingsCoverActions(t *testing.T) {
	bound := map[core.Action]int{}
	for _, kb := range keyBindings() {
		bound[kb.action]++
	}
	for _, a := range []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionPause, core.ActionStart, core.ActionReset, core.ActionQuit,
	} {
		if bound[a] == 0 {
			t.Errorf("no key bound to %v", a)
		}
	}
	if bound[core.ActionUp] != 2 {
		t.Errorf("ActionUp bound to %d keys, want arrow and W", bound[core.ActionUp])
	}
}

func TestPauseButtonCaption(t *testing.T) {
	var pause, start button
	for _, b := range newLayout(400).Buttons {
		switch b.Action {
		case core.ActionPause:
			pause = b
		case core.ActionStart:
			start = b
		}
	}

	tests := []struct {
		state snake.Lifecycle
		want  string
	}{
		{snake.LifecycleIdle, "PAUSE"},
		{snake.LifecycleRunning, "PAUSE"},
		{snake.LifecyclePaused, "RESUME"},
		{snake.LifecycleGameOver, "PAUSE"},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := pause.Caption(tt.state); got != tt.want {
				t.Errorf("Caption(%v) = %q, want %q", tt.state, got, tt.want)
			}
			if got := start.Caption(tt.state); got != "START" {
				t.Errorf("start Caption(%v) = %q, want START", tt.state, got)
			}
		})
	}
}

func TestPauseButtonFollowsController(t *testing.T) {
	ctrl, err := snake.New(snake.WithScheduler(schedule.NewFrames()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	var pause button
	for _, b := range newLayout(400).Buttons {
		if b.Action == core.ActionPause {
			pause = b
		}
	}

	ctrl.Handle(core.ActionStart)
	ctrl.Handle(pause.Action)
	if got := pause.Caption(ctrl.Snapshot().Lifecycle); got != "RESUME" {
		t.Errorf("after pause Caption = %q, want RESUME", got)
	}
	ctrl.Handle(pause.Action)
	if got := pause.Caption(ctrl.Snapshot().Lifecycle); got != "PAUSE" {
		t.Errorf("after resume Caption = %q, want PAUSE", got)
	}
}
