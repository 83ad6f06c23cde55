package systems

import (
	"testing"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
)

// scriptedRand replays fixed draws and fails the test on any draw it was
// not given.
type scriptedRand struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatalf("unexpected Intn(%d)", n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted Intn value %d outside [0, %d)", v, n)
	}
	return v
}

func (s *scriptedRand) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatal("unexpected Float64()")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// drained fails if any scripted draw was left unused.
func (s *scriptedRand) drained() {
	s.t.Helper()
	if len(s.ints) != 0 || len(s.floats) != 0 {
		s.t.Errorf("unused draws: ints=%v floats=%v", s.ints, s.floats)
	}
}

func testRules(t *testing.T) *Rules {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return NewRules(cfg)
}

func put(g *Grid, row, col int, kind components.Kind, energy, age, maxAge int) *components.Cell {
	c := g.At(row, col)
	*c = components.Cell{Kind: kind, Row: row, Col: col, Energy: energy, Age: age, MaxAge: maxAge}
	return c
}
