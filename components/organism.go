package components

// Cell is the full record for one grid position. Most cells are empty.
// Row and Col always match the cell's own coordinates while resident.
type Cell struct {
	Kind     Kind
	Row, Col int
	Energy   int // animals only; dies at <= 0
	Age      int // ticks survived since birth
	MaxAge   int // fixed at spawn or birth
	Maturity int // ticks since the cell became grass
}

// Reset empties the cell, keeping its coordinates.
func (c *Cell) Reset() {
	*c = Cell{Row: c.Row, Col: c.Col}
}

// Glyph returns the display rune, distinguishing young and mature grass.
func (c *Cell) Glyph() rune {
	switch c.Kind {
	case KindGrass:
		if c.Maturity < MatureGrassAge {
			return 'g'
		}
		return 'G'
	case KindRabbit:
		return 'r'
	case KindWolf:
		return 'W'
	default:
		return '.'
	}
}

// Dead reports whether an animal has run out of energy or outlived its max age.
func (c *Cell) Dead() bool {
	return c.Energy <= 0 || c.Age > c.MaxAge
}
