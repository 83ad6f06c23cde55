package systems

import "github.com/pthm-cable/meadow/components"

// FindNearest searches the square window of the given radius around from for
// the closest cell holding food, by Manhattan distance.
//
// The window is scanned with the row offset in the outer loop and the column
// offset in the inner loop, both from -radius to +radius. A candidate
// replaces the best only when strictly closer, so among equally distant cells
// the first one scanned wins. Cells outside the grid are skipped.
func FindNearest(g *Grid, from Position, food components.Kind, radius int) (Position, bool) {
	best := Position{}
	bestDist := 2*radius + 1
	found := false

	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			row, col := from.Row+dr, from.Col+dc
			if !g.InBounds(row, col) {
				continue
			}
			if g.At(row, col).Kind != food {
				continue
			}
			if d := manhattan(dr, dc); d < bestDist {
				bestDist = d
				best = Position{Row: row, Col: col}
				found = true
			}
		}
	}
	return best, found
}

// HeadingToward returns the single-step offset (sign of each delta) from one
// position toward another. Diagonal steps are allowed.
func HeadingToward(from, to Position) Position {
	return Position{Row: sign(to.Row - from.Row), Col: sign(to.Col - from.Col)}
}
