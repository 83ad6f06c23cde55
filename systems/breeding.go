package systems

import "github.com/pthm-cable/meadow/components"

// LifecycleReport summarises one death and reproduction pass.
type LifecycleReport struct {
	Census  Census // authoritative counts of the settled buffer
	Births  [components.NumKinds]int
	Starved [components.NumKinds]int // energy at or below zero
	OldAge  [components.NumKinds]int // age beyond max age
	DeadAge [components.NumKinds]int // summed age of the dead, for mean lifespan
}

// Deaths returns the total deaths of kind from either cause.
func (r *LifecycleReport) Deaths(kind components.Kind) int {
	return r.Starved[kind] + r.OldAge[kind]
}

// Lifecycle culls, counts and breeds the animals of the next buffer in place,
// in row-major order.
//
// An animal with energy at or below zero, or older than its max age, is
// removed and not counted. A survivor is counted, then, if its energy
// reaches the breeding threshold, rolls one Float64 against the breed
// chance. A successful roll probes up to PlacementAttempts random compass
// offsets for an empty cell on the grid. The first hit receives a newborn
// with age 0, the parent's max age and the offspring energy, and the parent
// pays that energy, floored at ParentMinEnergy. Newborns placed later in
// scan order are visited, and counted, by the same pass. Newborns placed
// behind the scan are counted at birth, so the census always matches the
// buffer.
//
// Grass is counted here only, so the returned census is the single source
// of the grass count.
func Lifecycle(next *Grid, rules *Rules, rng Rand) LifecycleReport {
	var report LifecycleReport

	for row := 0; row < next.Height(); row++ {
		for col := 0; col < next.Width(); col++ {
			c := next.At(row, col)
			switch {
			case c.Kind == components.KindGrass:
				report.Census.Grass++
				continue
			case !c.Kind.IsAnimal():
				continue
			}

			kind := c.Kind
			if c.Dead() {
				if c.Energy <= 0 {
					report.Starved[kind]++
				} else {
					report.OldAge[kind]++
				}
				report.DeadAge[kind] += c.Age
				c.Reset()
				continue
			}
			report.Census.Add(kind)

			sp := rules.Species(kind)
			if c.Energy < sp.BreedThreshold || rng.Float64() >= sp.BreedChance {
				continue
			}
			kid := birth(next, c, sp.OffspringEnergy, rules, rng)
			if kid == nil {
				continue
			}
			report.Births[kind]++
			if kid.Row < row || (kid.Row == row && kid.Col < col) {
				report.Census.Add(kind)
			}
		}
	}
	return report
}

// birth places one newborn next to parent and returns it. It returns nil,
// leaving the parent untouched, when every probe misses.
func birth(g *Grid, parent *components.Cell, offspringEnergy int, rules *Rules, rng Rand) *components.Cell {
	for attempt := 0; attempt < rules.PlacementAttempts; attempt++ {
		off := Neighbors[rng.Intn(len(Neighbors))]
		row, col := parent.Row+off.Row, parent.Col+off.Col
		if !g.InBounds(row, col) {
			continue
		}
		dst := g.At(row, col)
		if dst.Kind != components.KindEmpty {
			continue
		}

		*dst = components.Cell{
			Kind:   parent.Kind,
			Row:    row,
			Col:    col,
			Energy: offspringEnergy,
			MaxAge: parent.MaxAge,
		}
		parent.Energy -= offspringEnergy
		if parent.Energy < rules.ParentMinEnergy {
			parent.Energy = rules.ParentMinEnergy
		}
		return dst
	}
	return nil
}
