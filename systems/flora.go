package systems

import "github.com/pthm-cable/meadow/components"

// GrowGrass runs the growth pass in place on the live grid. Every empty cell
// takes one Float64 draw and becomes young grass when it falls below chance;
// standing grass ages by one tick. Animals are untouched. It returns the
// number of new grass cells.
func GrowGrass(g *Grid, chance float64, rng Rand) int {
	grown := 0
	g.Each(func(c *components.Cell) {
		switch c.Kind {
		case components.KindEmpty:
			if rng.Float64() < chance {
				c.Kind = components.KindGrass
				c.Maturity = 0
				grown++
			}
		case components.KindGrass:
			c.Maturity++
		}
	})
	return grown
}
