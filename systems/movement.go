package systems

import "github.com/pthm-cable/meadow/components"

// MoveReport summarises one movement pass.
type MoveReport struct {
	Moved     int // animals committed at a new cell
	Blocked   int // animals whose destination was off-grid or already claimed
	Displaced int // committed animals later overwritten by a blocked animal staying put
	Grazes    int // rabbits that stepped onto live grass
	Kills     int // wolves that stepped onto a live rabbit
}

// ResolveMoves computes the animal layer of the next buffer from the live
// grid. The live grid is only read.
//
// next is cleared and seeded with a copy of every live grass cell. Animals
// are then processed in row-major order of the live grid: each heads one
// step toward the nearest visible food, or along a random compass offset
// when none is visible. The step is taken only if the destination is on the
// grid and next holds empty or grass there; otherwise the animal stays at
// its origin. Claims are therefore resolved against what has already been
// committed to next, first come first served.
//
// Energy pays the species move cost times the season multiplier. Food gain is
// judged on the live grid at the resolved destination, so a rabbit that
// steps onto live grass grazes it and a wolf that steps onto a live rabbit
// eats it. The committed animal is one tick older with its max age kept.
func ResolveMoves(live, next *Grid, rules *Rules, season Season, rng Rand) MoveReport {
	var report MoveReport

	next.Clear()
	live.Each(func(c *components.Cell) {
		if c.Kind == components.KindGrass {
			*next.At(c.Row, c.Col) = *c
		}
	})

	multiplier := rules.Seasons.MoveCostMultiplier(season)

	for row := 0; row < live.Height(); row++ {
		for col := 0; col < live.Width(); col++ {
			src := live.At(row, col)
			if !src.Kind.IsAnimal() {
				continue
			}
			sp := rules.Species(src.Kind)
			origin := Position{Row: row, Col: col}

			var step Position
			if target, ok := FindNearest(live, origin, src.Kind.Food(), sp.SearchRadius); ok {
				step = HeadingToward(origin, target)
			} else {
				step = Neighbors[rng.Intn(len(Neighbors))]
			}

			dest := Position{Row: row + step.Row, Col: col + step.Col}
			if !claimable(next, dest) {
				dest = origin
				report.Blocked++
				if next.At(row, col).Kind.IsAnimal() {
					report.Displaced++
				}
			} else if dest != origin {
				report.Moved++
			}

			gain := 0
			if live.At(dest.Row, dest.Col).Kind == src.Kind.Food() {
				gain = sp.FoodGain
				if src.Kind == components.KindRabbit {
					report.Grazes++
				} else {
					report.Kills++
				}
			}

			*next.At(dest.Row, dest.Col) = components.Cell{
				Kind:   src.Kind,
				Row:    dest.Row,
				Col:    dest.Col,
				Energy: src.Energy - sp.MoveCost*multiplier + gain,
				Age:    src.Age + 1,
				MaxAge: src.MaxAge,
			}
		}
	}
	return report
}

// claimable reports whether a mover may take dest in the next buffer.
func claimable(next *Grid, dest Position) bool {
	if !next.InBounds(dest.Row, dest.Col) {
		return false
	}
	k := next.At(dest.Row, dest.Col).Kind
	return k == components.KindEmpty || k == components.KindGrass
}
