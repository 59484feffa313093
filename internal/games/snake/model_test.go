package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCellAdd(t *testing.T) {
	tests := []struct {
		h    Heading
		want Cell
	}{
		{HeadingNone, Cell{5, 5}},
		{HeadingUp, Cell{5, 4}},
		{HeadingDown, Cell{5, 6}},
		{HeadingLeft, Cell{4, 5}},
		{HeadingRight, Cell{6, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.h.String(), func(t *testing.T) {
			if got := (Cell{5, 5}).Add(tt.h); got != tt.want {
				t.Errorf("Add(%v) = %v, want %v", tt.h, got, tt.want)
			}
		})
	}
}

func TestHeadingIsOpposite(t *testing.T) {
	tests := []struct {
		a, b Heading
		want bool
	}{
		{HeadingUp, HeadingDown, true},
		{HeadingDown, HeadingUp, true},
		{HeadingLeft, HeadingRight, true},
		{HeadingRight, HeadingLeft, true},
		{HeadingUp, HeadingLeft, false},
		{HeadingUp, HeadingUp, false},
		{HeadingNone, HeadingNone, false},
		{HeadingLeft, HeadingNone, false},
		{HeadingNone, HeadingRight, false},
	}

	for _, tt := range tests {
		if got := tt.a.IsOpposite(tt.b); got != tt.want {
			t.Errorf("%v.IsOpposite(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGrid(t *testing.T) {
	g := DefaultGrid()
	if g.Capacity() != 400 {
		t.Errorf("Capacity() = %d, want 400", g.Capacity())
	}
	if g.PixelSize() != 400 {
		t.Errorf("PixelSize() = %d, want 400", g.PixelSize())
	}

	inside := []Cell{{0, 0}, {19, 19}, {0, 19}, {10, 10}}
	for _, c := range inside {
		if !g.Contains(c) {
			t.Errorf("Contains(%v) = false, want true", c)
		}
	}
	outside := []Cell{{-1, 0}, {0, -1}, {20, 0}, {0, 20}}
	for _, c := range outside {
		if g.Contains(c) {
			t.Errorf("Contains(%v) = true, want false", c)
		}
	}
}

func TestBodyAdvanceShrinkGrow(t *testing.T) {
	b := NewBody(Cell{10, 10})

	head := b.Advance(HeadingRight)
	if head != (Cell{11, 10}) {
		t.Fatalf("Advance() = %v, want (11,10)", head)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() after Advance = %d, want 2", b.Len())
	}
	b.Shrink()
	if got := b.Cells(); len(got) != 1 || got[0] != (Cell{11, 10}) {
		t.Errorf("Cells() after Shrink = %v, want [(11,10)]", got)
	}

	b.Advance(HeadingDown)
	b.Grow()
	want := []Cell{{11, 11}, {11, 10}}
	got := b.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBodyShrinkKeepsHead(t *testing.T) {
	b := NewBody(Cell{3, 3})
	b.Shrink()
	if b.Len() != 1 || b.Head() != (Cell{3, 3}) {
		t.Errorf("Shrink on single cell changed body: %v", b.Cells())
	}
}

func TestBodyCellsIsCopy(t *testing.T) {
	b := NewBody(Cell{1, 1}, Cell{1, 2})
	cells := b.Cells()
	cells[0] = Cell{9, 9}
	if b.Head() != (Cell{1, 1}) {
		t.Error("mutating Cells() result changed the body")
	}
}

func TestBodyOccupied(t *testing.T) {
	b := NewBody(Cell{1, 1}, Cell{1, 2}, Cell{2, 2})
	occ := b.Occupied()
	if len(occ) != 3 {
		t.Fatalf("len(Occupied()) = %d, want 3", len(occ))
	}
	for _, c := range b.Cells() {
		if _, ok := occ[c]; !ok {
			t.Errorf("Occupied() missing %v", c)
		}
		if !b.Contains(c) {
			t.Errorf("Contains(%v) = false", c)
		}
	}
	if b.Contains(Cell{0, 0}) {
		t.Error("Contains((0,0)) = true, want false")
	}
}

func TestCollisions(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		tests := []struct {
			head Cell
			want bool
		}{
			{Cell{0, 0}, false},
			{Cell{19, 19}, false},
			{Cell{-1, 5}, true},
			{Cell{5, -1}, true},
			{Cell{20, 5}, true},
			{Cell{5, 20}, true},
		}
		for _, tt := range tests {
			if got := IsWallCollision(tt.head, 20); got != tt.want {
				t.Errorf("IsWallCollision(%v) = %v, want %v", tt.head, got, tt.want)
			}
		}
	})

	t.Run("self", func(t *testing.T) {
		body := []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}}
		if IsSelfCollision(Cell{5, 5}, body) {
			t.Error("head must not collide with itself")
		}
		if !IsSelfCollision(Cell{6, 6}, body) {
			t.Error("head on body cell should collide")
		}
		if IsSelfCollision(Cell{0, 0}, body) {
			t.Error("free cell should not collide")
		}
		if IsSelfCollision(Cell{1, 1}, []Cell{{1, 1}}) {
			t.Error("single-cell snake cannot collide with itself")
		}
	})

	t.Run("food", func(t *testing.T) {
		if !IsFoodEaten(Cell{2, 3}, Cell{2, 3}) {
			t.Error("IsFoodEaten on same cell = false")
		}
		if IsFoodEaten(Cell{2, 3}, Cell{3, 2}) {
			t.Error("IsFoodEaten on different cell = true")
		}
	})
}

func TestFoodPlacerAvoidsSnake(t *testing.T) {
	p := NewFoodPlacer(rand.New(rand.NewSource(7)))
	occupied := map[Cell]struct{}{}
	for x := range 5 {
		for y := range 4 {
			occupied[Cell{x, y}] = struct{}{}
		}
	}

	for range 200 {
		c, err := p.Place(occupied, 5)
		if err != nil {
			t.Fatalf("Place() error: %v", err)
		}
		if c.Y != 4 || c.X < 0 || c.X >= 5 {
			t.Fatalf("Place() = %v, want a cell on the free last row", c)
		}
	}
}

func TestFoodPlacerSingleFreeCell(t *testing.T) {
	p := NewFoodPlacer(rand.New(rand.NewSource(1)))
	dim := 10
	occupied := map[Cell]struct{}{}
	for x := range dim {
		for y := range dim {
			occupied[Cell{x, y}] = struct{}{}
		}
	}
	delete(occupied, Cell{7, 3})

	c, err := p.Place(occupied, dim)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if c != (Cell{7, 3}) {
		t.Errorf("Place() = %v, want (7,3)", c)
	}
}

func TestFoodPlacerBoardFull(t *testing.T) {
	p := NewFoodPlacer(rand.New(rand.NewSource(1)))
	occupied := map[Cell]struct{}{
		{0, 0}: {}, {0, 1}: {}, {1, 0}: {}, {1, 1}: {},
	}
	if _, err := p.Place(occupied, 2); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Place() on full board error = %v, want ErrBoardFull", err)
	}
}

func TestFoodPlacerDeterministic(t *testing.T) {
	p1 := NewFoodPlacer(rand.New(rand.NewSource(42)))
	p2 := NewFoodPlacer(rand.New(rand.NewSource(42)))
	occupied := map[Cell]struct{}{{10, 10}: {}}

	for i := range 50 {
		a, _ := p1.Place(occupied, 20)
		b, _ := p2.Place(occupied, 20)
		if a != b {
			t.Fatalf("placement %d differs: %v vs %v", i, a, b)
		}
	}
}
