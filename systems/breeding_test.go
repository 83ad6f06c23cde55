package systems

import (
	"testing"

	"github.com/pthm-cable/meadow/components"
)

// ---------- death ----------

func TestLifecycle_Deaths(t *testing.T) {
	tests := []struct {
		name        string
		energy, age int
		wantStarved int
		wantOldAge  int
	}{
		{"zero energy", 0, 3, 1, 0},
		{"negative energy", -3, 3, 1, 0},
		{"past max age", 15, 41, 0, 1},
		{"both causes counts starvation", 0, 41, 1, 0},
		{"at max age survives", 15, 40, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := testRules(t)
			g := NewGrid(3, 3)
			put(g, 1, 1, components.KindRabbit, tt.energy, tt.age, 40)

			// Survivors are below the breeding threshold: no draws at all.
			report := Lifecycle(g, rules, &scriptedRand{t: t})

			if report.Starved[components.KindRabbit] != tt.wantStarved || report.OldAge[components.KindRabbit] != tt.wantOldAge {
				t.Errorf("starved=%d oldAge=%d", report.Starved[components.KindRabbit], report.OldAge[components.KindRabbit])
			}
			dead := tt.wantStarved+tt.wantOldAge > 0
			if got := g.At(1, 1).Kind == components.KindEmpty; got != dead {
				t.Errorf("cell emptied = %v, want %v", got, dead)
			}
			want := 1
			if dead {
				want = 0
			}
			if report.Census.Rabbits != want {
				t.Errorf("census rabbits = %d, want %d", report.Census.Rabbits, want)
			}
		})
	}
}

// ---------- reproduction ----------

func TestLifecycle_RabbitBirth(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(3, 3)
	parent := put(g, 1, 1, components.KindRabbit, 22, 6, 44)

	rng := &scriptedRand{t: t, floats: []float64{0.1}, ints: []int{6}}
	report := Lifecycle(g, rules, rng)
	rng.drained()

	if report.Births[components.KindRabbit] != 1 {
		t.Fatalf("births = %d, want 1", report.Births[components.KindRabbit])
	}
	if parent.Energy != 12 {
		t.Errorf("parent energy = %d, want 12", parent.Energy)
	}
	kid := g.At(2, 1)
	want := components.Cell{Kind: components.KindRabbit, Row: 2, Col: 1, Energy: 10, Age: 0, MaxAge: 44}
	if *kid != want {
		t.Errorf("newborn = %+v, want %+v", *kid, want)
	}
	if report.Census.Rabbits != 2 {
		t.Errorf("census rabbits = %d, want 2 (newborn visited)", report.Census.Rabbits)
	}
}

func TestLifecycle_ParentEnergyFloor(t *testing.T) {
	rules := testRules(t)
	rules.Rabbit.OffspringEnergy = 20
	g := NewGrid(3, 3)
	parent := put(g, 1, 1, components.KindRabbit, 22, 0, 40)

	rng := &scriptedRand{t: t, floats: []float64{0}, ints: []int{7}}
	Lifecycle(g, rules, rng)

	if parent.Energy != 5 {
		t.Errorf("parent energy = %d, want floor 5", parent.Energy)
	}
	if kid := g.At(2, 2); kid.Energy != 20 {
		t.Errorf("newborn energy = %d, want 20", kid.Energy)
	}
}

func TestLifecycle_PlacementExhausted(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(1, 1)
	parent := put(g, 0, 0, components.KindWolf, 40, 0, 60)

	ints := make([]int, rules.PlacementAttempts)
	for i := range ints {
		ints[i] = i % 8
	}
	rng := &scriptedRand{t: t, floats: []float64{0.01}, ints: ints}
	report := Lifecycle(g, rules, rng)
	rng.drained()

	if report.Births[components.KindWolf] != 0 {
		t.Error("birth recorded with no free cell")
	}
	if parent.Energy != 40 {
		t.Errorf("parent energy = %d, want unchanged 40", parent.Energy)
	}
}

func TestLifecycle_ProbesSkipOccupiedCells(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(3, 3)
	put(g, 1, 1, components.KindWolf, 40, 0, 60)
	put(g, 0, 1, components.KindGrass, 0, 0, 0)

	// Off-grid is impossible from the centre; (0,1) holds grass, (1,2) is free.
	rng := &scriptedRand{t: t, floats: []float64{0.1}, ints: []int{1, 4}}
	report := Lifecycle(g, rules, rng)
	rng.drained()

	if report.Births[components.KindWolf] != 1 {
		t.Fatalf("births = %d, want 1", report.Births[components.KindWolf])
	}
	if g.At(0, 1).Kind != components.KindGrass {
		t.Error("newborn placed on grass")
	}
	if kid := g.At(1, 2); kid.Kind != components.KindWolf || kid.Energy != 15 {
		t.Errorf("newborn = %+v", *kid)
	}
}

func TestLifecycle_DrawsOnlyWhenEligible(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(4, 1)
	put(g, 0, 0, components.KindRabbit, 21, 0, 40) // below threshold: no draw
	put(g, 0, 2, components.KindRabbit, 30, 0, 40) // failed roll: no placement draw
	put(g, 0, 3, components.KindWolf, 34, 0, 60)   // below threshold

	rng := &scriptedRand{t: t, floats: []float64{0.35}}
	report := Lifecycle(g, rules, rng)
	rng.drained()

	if report.Census.Rabbits != 2 || report.Census.Wolves != 1 {
		t.Errorf("census = %+v", report.Census)
	}
}

func TestLifecycle_NewbornScanOrder(t *testing.T) {
	rules := testRules(t)
	rules.Rabbit.OffspringEnergy = 22

	tests := []struct {
		name    string
		grid    func() *Grid
		floats  []float64
		ints    []int
		rabbits int
	}{
		{
			// Parent at (0,1) breeds west: the newborn sits behind the scan,
			// is not revisited and draws nothing.
			name: "behind scan",
			grid: func() *Grid {
				g := NewGrid(3, 1)
				put(g, 0, 1, components.KindRabbit, 60, 0, 40)
				return g
			},
			floats:  []float64{0.2},
			ints:    []int{3},
			rabbits: 2,
		},
		{
			// Parent at (1,1) breeds north-east: the newborn lands on an
			// earlier row.
			name: "earlier row",
			grid: func() *Grid {
				g := NewGrid(3, 2)
				put(g, 1, 1, components.KindRabbit, 60, 0, 40)
				return g
			},
			floats:  []float64{0.2},
			ints:    []int{2},
			rabbits: 2,
		},
		{
			// Parent at (0,0) breeds east: the newborn is visited, counted
			// once and, meeting the threshold, rolls once.
			name: "ahead of scan",
			grid: func() *Grid {
				g := NewGrid(3, 1)
				put(g, 0, 0, components.KindRabbit, 60, 0, 40)
				return g
			},
			floats:  []float64{0.2, 0.9},
			ints:    []int{4},
			rabbits: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.grid()
			rng := &scriptedRand{t: t, floats: tt.floats, ints: tt.ints}
			report := Lifecycle(g, rules, rng)
			rng.drained()

			if report.Census.Rabbits != tt.rabbits {
				t.Errorf("census rabbits = %d, want %d", report.Census.Rabbits, tt.rabbits)
			}
			if report.Census != TakeCensus(g) {
				t.Errorf("report census %+v != grid census %+v", report.Census, TakeCensus(g))
			}
			if report.Births[components.KindRabbit] != 1 {
				t.Errorf("births = %d, want 1", report.Births[components.KindRabbit])
			}
		})
	}
}

func TestLifecycle_GrassCountedOnce(t *testing.T) {
	rules := testRules(t)
	g := NewGrid(4, 4)
	for col := 0; col < 4; col++ {
		put(g, 2, col, components.KindGrass, 0, 0, 0)
	}
	report := Lifecycle(g, rules, &scriptedRand{t: t})
	if report.Census.Grass != 4 {
		t.Errorf("grass = %d, want 4", report.Census.Grass)
	}
	if report.Census != TakeCensus(g) {
		t.Errorf("report census %+v != grid census %+v", report.Census, TakeCensus(g))
	}
}
