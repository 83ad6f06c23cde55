package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/meadow/components"
)

func TestSpawn_PlacesRequestedCount(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(28, 28)
	rng := rand.New(rand.NewSource(1))

	if n := Spawn(g, components.KindGrass, 250, rules, rng); n != 250 {
		t.Fatalf("placed %d grass, want 250", n)
	}
	if n := Spawn(g, components.KindRabbit, 50, rules, rng); n != 50 {
		t.Fatalf("placed %d rabbits, want 50", n)
	}
	if g.Count(components.KindGrass) != 250 || g.Count(components.KindRabbit) != 50 {
		t.Errorf("grid holds %d grass %d rabbits", g.Count(components.KindGrass), g.Count(components.KindRabbit))
	}
}

func TestSpawn_AnimalAttributes(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(10, 10)
	rng := rand.New(rand.NewSource(7))
	Spawn(g, components.KindRabbit, 30, rules, rng)
	Spawn(g, components.KindWolf, 30, rules, rng)

	g.Each(func(c *components.Cell) {
		switch c.Kind {
		case components.KindRabbit:
			if c.Energy != 12 || c.MaxAge < 30 || c.MaxAge > 49 || c.Age != 0 {
				t.Errorf("rabbit %+v", *c)
			}
		case components.KindWolf:
			if c.Energy != 25 || c.MaxAge < 50 || c.MaxAge > 69 || c.Age != 0 {
				t.Errorf("wolf %+v", *c)
			}
		}
	})
}

func TestSpawn_ScriptedDraws(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(4, 3)
	put(g, 1, 2, components.KindGrass, 0, 0, 0)

	// First probe hits the grass cell and is rejected; second lands at (2,0).
	rng := &scriptedRand{t: t, ints: []int{1, 2, 2, 0, 5}}
	if n := Spawn(g, components.KindRabbit, 1, rules, rng); n != 1 {
		t.Fatalf("placed %d, want 1", n)
	}
	rng.drained()

	c := g.At(2, 0)
	if c.Kind != components.KindRabbit || c.MaxAge != 35 || c.Row != 2 || c.Col != 0 {
		t.Errorf("spawned cell = %+v", *c)
	}
	if g.At(1, 2).Kind != components.KindGrass {
		t.Error("spawner overwrote an occupied cell")
	}
}

func TestSpawn_CapacityShortfallIsPartial(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(3, 3)
	put(g, 0, 0, components.KindWolf, 10, 0, 60)
	rng := rand.New(rand.NewSource(3))

	n := Spawn(g, components.KindGrass, 100, rules, rng)
	if n > 8 {
		t.Fatalf("placed %d, only 8 cells free", n)
	}
	if got := g.Count(components.KindGrass); got != n {
		t.Errorf("grid grass = %d, returned %d", got, n)
	}
	if g.At(0, 0).Kind != components.KindWolf {
		t.Error("occupant overwritten")
	}
}

func TestSpawn_ZeroCountDrawsNothing(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(3, 3)
	rng := &scriptedRand{t: t}
	if n := Spawn(g, components.KindRabbit, 0, rules, rng); n != 0 {
		t.Errorf("placed %d, want 0", n)
	}
}
