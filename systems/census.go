package systems

import "github.com/pthm-cable/meadow/components"

// Census holds population counts of one grid state.
type Census struct {
	Grass   int
	Rabbits int
	Wolves  int
}

// Add counts one cell of kind. Empty cells are ignored.
func (c *Census) Add(kind components.Kind) {
	switch kind {
	case components.KindGrass:
		c.Grass++
	case components.KindRabbit:
		c.Rabbits++
	case components.KindWolf:
		c.Wolves++
	}
}

// Of returns the count for kind.
func (c Census) Of(kind components.Kind) int {
	switch kind {
	case components.KindGrass:
		return c.Grass
	case components.KindRabbit:
		return c.Rabbits
	case components.KindWolf:
		return c.Wolves
	}
	return 0
}

// Total returns the number of occupied cells.
func (c Census) Total() int {
	return c.Grass + c.Rabbits + c.Wolves
}

// TakeCensus counts every occupied cell of g.
func TakeCensus(g *Grid) Census {
	var c Census
	g.Each(func(cell *components.Cell) {
		c.Add(cell.Kind)
	})
	return c
}
