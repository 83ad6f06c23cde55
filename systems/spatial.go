package systems

import "github.com/pthm-cable/meadow/components"

// Position addresses a grid cell.
type Position struct {
	Row, Col int
}

// Neighbors lists the 8 compass offsets in the fixed order used for random
// headings and offspring placement.
var Neighbors = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size row-major array of cells. There is no wraparound.
type Grid struct {
	width, height int
	cells         []components.Cell
}

// NewGrid allocates an empty grid. Dimensions must be positive.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]components.Cell, width*height),
	}
	g.Clear()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Capacity returns the number of cells.
func (g *Grid) Capacity() int { return len(g.cells) }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the cell at (row, col). The caller must check bounds first.
func (g *Grid) At(row, col int) *components.Cell {
	return &g.cells[row*g.width+col]
}

// Clear sets every cell to empty with its own coordinates.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = components.Cell{Row: i / g.width, Col: i % g.width}
	}
}

// Count returns the number of cells holding kind.
func (g *Grid) Count(kind components.Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == kind {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *components.Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}
