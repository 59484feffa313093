package snake

// Body is the ordered list of cells occupied by the snake, head at index 0.
//
// Movement is "prepend the new head, then maybe drop the tail": Advance always
// prepends, and the caller follows with Shrink on a normal tick or Grow when
// food was eaten. Length changes therefore need no special cases.
type Body struct {
	cells []Cell
}

// NewBody creates a snake occupying the given cells, head first.
func NewBody(cells ...Cell) *Body {
	b := &Body{cells: make([]Cell, len(cells))}
	copy(b.cells, cells)
	return b
}

// Advance prepends head+h and returns the new head.
func (b *Body) Advance(h Heading) Cell {
	newHead := b.Head().Add(h)
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = newHead
	return newHead
}

// Grow keeps the tail after an Advance. It exists so call sites read
// symmetrically with Shrink.
func (b *Body) Grow() {}

// Shrink removes the tail cell. A single-cell body is left untouched.
func (b *Body) Shrink() {
	if len(b.cells) > 1 {
		b.cells = b.cells[:len(b.cells)-1]
	}
}

// Head returns the first cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Len returns the number of occupied cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the occupied cells, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether the snake occupies c.
func (b *Body) Contains(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Occupied returns the set of occupied cells.
func (b *Body) Occupied() map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(b.cells))
	for _, seg := range b.cells {
		set[seg] = struct{}{}
	}
	return set
}
