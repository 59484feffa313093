package snake

// Cell is a board coordinate. Valid cells satisfy 0 <= X, Y < Grid.Dimension.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the heading's vector.
func (c Cell) Add(h Heading) Cell {
	dx, dy := h.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is the square board: Dimension cells per side, CellSize pixels per cell.
// CellSize only matters to pixel renderers.
type Grid struct {
	Dimension int
	CellSize  int
}

// DefaultGrid matches the classic 400×400 canvas: 20 cells of 20 pixels.
func DefaultGrid() Grid {
	return Grid{Dimension: 20, CellSize: 20}
}

// Contains reports whether the cell lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Dimension && c.Y >= 0 && c.Y < g.Dimension
}

// Capacity returns the number of cells on the board.
func (g Grid) Capacity() int {
	return g.Dimension * g.Dimension
}

// PixelSize returns the side length of the board surface in pixels.
func (g Grid) PixelSize() int {
	return g.Dimension * g.CellSize
}
