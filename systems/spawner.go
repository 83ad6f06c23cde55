package systems

import "github.com/pthm-cable/meadow/components"

// Spawn places up to count cells of kind on uniformly random empty cells.
// It makes at most capacity*SpawnAttemptsPerCell attempts and never
// overwrites an occupant, so fewer than count may be placed. It returns the
// number placed.
func Spawn(g *Grid, kind components.Kind, count int, rules *Rules, rng Rand) int {
	if count <= 0 || kind == components.KindEmpty {
		return 0
	}

	maxAttempts := g.Capacity() * rules.SpawnAttemptsPerCell
	sp := rules.Species(kind)

	placed := 0
	for attempts := 0; placed < count && attempts < maxAttempts; attempts++ {
		row := rng.Intn(g.Height())
		col := rng.Intn(g.Width())
		c := g.At(row, col)
		if c.Kind != components.KindEmpty {
			continue
		}

		*c = components.Cell{Kind: kind, Row: row, Col: col}
		if sp != nil {
			c.Energy = sp.InitialEnergy
			c.MaxAge = sp.MaxAgeBase + rng.Intn(sp.MaxAgeJitter)
		}
		placed++
	}
	return placed
}
