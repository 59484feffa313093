package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat("      \n", 2) + "      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c := s.GetCell(2, 1); c != blank {
		t.Errorf("GetCell = %+v, want blank", c)
	}
}

func TestSetColoredClipping(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"inside", 2, 1, true},
		{"origin", 0, 0, true},
		{"left of screen", -1, 0, false},
		{"right of screen", 4, 0, false},
		{"above screen", 0, -1, false},
		{"below screen", 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(4, 3)
			s.SetColored(tt.x, tt.y, '@', ColorBrightGreen)

			got := s.GetCell(tt.x, tt.y)
			if tt.in {
				if got.Rune != '@' || got.Color != ColorBrightGreen {
					t.Errorf("GetCell = %+v, want '@' bright green", got)
				}
				return
			}
			if got != blank {
				t.Errorf("out-of-bounds GetCell = %+v, want blank", got)
			}
			if strings.ContainsRune(s.String(), '@') {
				t.Error("out-of-bounds write leaked onto the screen")
			}
		})
	}
}

func TestClearResetsColour(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "ooo", ColorGreen)
	s.DrawTextColored(0, 1, "*", ColorRed)

	s.Clear()

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestDrawTextColoredClipsAtEdge(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(5, 0, "Score", ColorWhite)

	if got := s.Row(0); got != "     Sco" {
		t.Errorf("Row(0) = %q, want %q", got, "     Sco")
	}
	if c := s.GetCell(7, 0); c.Color != ColorWhite {
		t.Errorf("colour = %v, want white", c.Color)
	}
}

func TestDrawTextColoredCountsRunes(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColored(0, 0, "─•─", ColorGray)

	if got := s.Row(0); got != "─•─ " {
		t.Errorf("Row(0) = %q, want %q", got, "─•─ ")
	}
}

func TestDrawRectBlanksOverlayArea(t *testing.T) {
	s := NewScreen(6, 4)
	for y := range 4 {
		s.DrawTextColored(0, y, "oooooo", ColorGreen)
	}

	// Partly off screen on the right
	s.DrawRect(NewRect(2, 1, 10, 2), ' ')

	want := []string{"oooooo", "oo    ", "oo    ", "oooooo"}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
	if c := s.GetCell(3, 1); c.Color != ColorDefault {
		t.Errorf("blanked cell colour = %v, want default", c.Color)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
	if c := s.GetCell(4, 3); c.Color != ColorGray {
		t.Errorf("corner colour = %v, want gray", c.Color)
	}
}

func TestDrawHLine(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawHLine(1, 1, 10, '─', ColorGray)

	if got := s.Row(1); got != " ────" {
		t.Errorf("Row(1) = %q, want %q", got, " ────")
	}
	if got := s.Row(0); got != "     " {
		t.Errorf("Row(0) = %q, want untouched", got)
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "@ooo", ColorGreen)
	s.DrawTextColored(0, 1, "*", ColorRed)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "@ooo  " {
		t.Errorf("Row(0) = %q after grow", got)
	}
	if c := s.GetCell(0, 1); c.Rune != '*' || c.Color != ColorRed {
		t.Errorf("GetCell(0,1) = %+v after grow", c)
	}

	s.Resize(2, 1)
	if got := s.String(); got != "@o" {
		t.Errorf("String() = %q after shrink, want %q", got, "@o")
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, want blank row", got)
	}
	if got := s.GetCell(-1, 0).Rune; got != ' ' {
		t.Errorf("GetCell(-1,0) = %q, want space", got)
	}
}
