package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/systems"
	"github.com/pthm-cable/meadow/telemetry"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, seed int64) *Game {
	t.Helper()
	g, err := NewGame(Options{Config: cfg, Seed: seed, RunID: "test"})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

// literalCounts recounts the live grid cell by cell.
func literalCounts(g *Game) (grass, rabbits, wolves int) {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			switch g.Cell(row, col).Kind {
			case components.KindGrass:
				grass++
			case components.KindRabbit:
				rabbits++
			case components.KindWolf:
				wolves++
			}
		}
	}
	return grass, rabbits, wolves
}

func TestNewGame_InitialPopulation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Population.InitialWolves = 5
	g := newTestGame(t, cfg, 1)

	c := g.Counters()
	if c.Tick != 0 {
		t.Errorf("tick = %d, want 0", c.Tick)
	}
	if c.Grass != 250 || c.Rabbits != 50 || c.Wolves != 5 {
		t.Errorf("counters = %+v, want 250/50/5", c)
	}
	grass, rabbits, wolves := literalCounts(g)
	if grass != c.Grass || rabbits != c.Rabbits || wolves != c.Wolves {
		t.Errorf("grid holds %d/%d/%d, counters say %d/%d/%d",
			grass, rabbits, wolves, c.Grass, c.Rabbits, c.Wolves)
	}
	if len(g.History()) != 0 {
		t.Errorf("history has %d samples after reset", len(g.History()))
	}
}

func TestStep_CountersMatchGrid(t *testing.T) {
	cfg := testConfig(t)
	cfg.Population.InitialWolves = 8
	capacity := cfg.Grid.Width * cfg.Grid.Height

	for _, seed := range []int64{1, 7, 42} {
		g := newTestGame(t, cfg, seed)
		for i := 0; i < 150; i++ {
			g.Step()

			c := g.Counters()
			grass, rabbits, wolves := literalCounts(g)
			if grass != c.Grass || rabbits != c.Rabbits || wolves != c.Wolves {
				t.Fatalf("seed %d tick %d: grid %d/%d/%d, counters %d/%d/%d",
					seed, c.Tick, grass, rabbits, wolves, c.Grass, c.Rabbits, c.Wolves)
			}
			if total := c.Grass + c.Rabbits + c.Wolves; total > capacity {
				t.Fatalf("seed %d tick %d: %d occupants exceed capacity %d", seed, c.Tick, total, capacity)
			}
		}
		if g.Tick() != 150 {
			t.Errorf("tick = %d, want 150", g.Tick())
		}
	}
}

func TestStep_HistoryTracksCounts(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.Size = 4
	g := newTestGame(t, cfg, 3)

	var want []Sample
	for i := 0; i < 6; i++ {
		g.Step()
		c := g.Counters()
		want = append(want, Sample{Rabbits: c.Rabbits, Wolves: c.Wolves})
	}

	got := g.History()
	want = want[len(want)-4:]
	if len(got) != len(want) {
		t.Fatalf("history len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if g.HistoryCap() != 4 {
		t.Errorf("history cap = %d, want 4", g.HistoryCap())
	}
}

func TestSeason_AdvancesWithTicks(t *testing.T) {
	tests := []struct {
		name  string
		start systems.Season
		ticks int
		want  systems.Season
	}{
		{"spring start", systems.Spring, 0, systems.Spring},
		{"two seasons in", systems.Spring, 250, systems.Autumn},
		{"winter start", systems.Winter, 0, systems.Winter},
		{"winter wraps", systems.Winter, 100, systems.Spring},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Season.Start = int(tt.start)
			cfg.Population.InitialRabbits = 0
			g := newTestGame(t, cfg, 1)
			for i := 0; i < tt.ticks; i++ {
				g.Step()
			}
			if got := g.Counters().Season; got != tt.want {
				t.Errorf("season = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReset_RejectsInvalidSetup(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	for i := 0; i < 5; i++ {
		g.Step()
	}
	before := g.Counters()

	bad := []Setup{
		{InitialGrass: -1},
		{InitialRabbits: -5},
		{StartingSeason: 4},
		{StartingSeason: -1},
	}
	for _, s := range bad {
		if err := g.Reset(s); err == nil || !strings.Contains(err.Error(), "invalid setup") {
			t.Errorf("Reset(%+v) error = %v, want invalid setup", s, err)
		}
	}
	if after := g.Counters(); after != before {
		t.Errorf("rejected reset changed state: %+v -> %+v", before, after)
	}
}

func TestReset_ClearsState(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, cfg, 5)
	for i := 0; i < 20; i++ {
		g.Step()
	}

	setup := Setup{InitialGrass: 10, InitialRabbits: 3, InitialWolves: 2, StartingSeason: systems.Summer}
	if err := g.Reset(setup); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	c := g.Counters()
	if c.Tick != 0 || c.Season != systems.Summer {
		t.Errorf("tick/season = %d/%v, want 0/summer", c.Tick, c.Season)
	}
	if c.Grass != 10 || c.Rabbits != 3 || c.Wolves != 2 {
		t.Errorf("counters = %+v, want 10/3/2", c)
	}
	if len(g.History()) != 0 || g.Peaks() != (Peaks{}) {
		t.Error("history or peaks survived reset")
	}
	if g.Setup() != setup {
		t.Errorf("setup = %+v, want %+v", g.Setup(), setup)
	}
}

func TestReset_OverCapacityPlacesWhatFits(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grid.Width, cfg.Grid.Height = 5, 4
	g := newTestGame(t, cfg, 2)

	if err := g.Reset(Setup{InitialGrass: 100, InitialRabbits: 100}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	c := g.Counters()
	if total := c.Grass + c.Rabbits + c.Wolves; total > 20 {
		t.Errorf("%d occupants on a 20-cell grid", total)
	}
}

func TestCell_OutOfBoundsIsEmpty(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	for _, p := range []systems.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: g.Height(), Col: 0}, {Row: 0, Col: g.Width()}} {
		if v := g.Cell(p.Row, p.Col); v.Kind != components.KindEmpty {
			t.Errorf("Cell(%d, %d) = %v, want empty", p.Row, p.Col, v.Kind)
		}
	}
}

func TestAnimalsExtinct(t *testing.T) {
	cfg := testConfig(t)
	cfg.Population.InitialRabbits = 0
	g := newTestGame(t, cfg, 1)
	if !g.AnimalsExtinct() {
		t.Error("no animals placed, want extinct")
	}

	if err := g.Reset(Setup{InitialRabbits: 1}); err != nil {
		t.Fatal(err)
	}
	if g.AnimalsExtinct() {
		t.Error("one rabbit placed, want not extinct")
	}
}

func TestSaveSnapshot_RoundTrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grid.Width, cfg.Grid.Height = 12, 6
	cfg.Population.InitialGrass = 20
	cfg.Population.InitialRabbits = 5
	cfg.Population.InitialWolves = 2
	g := newTestGame(t, cfg, 9)
	for i := 0; i < 3; i++ {
		g.Step()
	}

	dir := t.TempDir()
	path, err := g.SaveSnapshot(dir, nil)
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if filepath.Base(path) != "ecosystem_tick_3.txt" {
		t.Errorf("file = %s, want ecosystem_tick_3.txt", filepath.Base(path))
	}

	snap, err := telemetry.LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	c := g.Counters()
	if snap.Tick != 3 || snap.Grass != c.Grass || snap.Rabbits != c.Rabbits || snap.Wolves != c.Wolves {
		t.Errorf("snapshot header = %+v, counters = %+v", snap, c)
	}
	if len(snap.Rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(snap.Rows))
	}
	for row, line := range snap.Rows {
		if len(line) != 12 {
			t.Fatalf("row %d has %d columns, want 12", row, len(line))
		}
		for col := range line {
			if want := g.Cell(row, col).Kind.SnapshotGlyph(); line[col] != want {
				t.Errorf("(%d,%d) = %c, want %c", row, col, line[col], want)
			}
		}
	}
}

func TestNewGame_OutputDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Telemetry.StatsWindow = 10
	dir := filepath.Join(t.TempDir(), "out")

	var flushed []telemetry.WindowStats
	g, err := NewGame(Options{
		Config:        cfg,
		Seed:          4,
		RunID:         "run-1",
		OutputDir:     dir,
		StatsCallback: func(s telemetry.WindowStats) { flushed = append(flushed, s) },
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for i := 0; i < 30; i++ {
		g.Step()
	}
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(flushed) != 3 {
		t.Errorf("flushed %d windows, want 3", len(flushed))
	}
	for _, name := range []string{"config.yaml", "run.yaml", "telemetry.csv", "perf.csv", "bookmarks.csv", "population.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "run.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "run-1") {
		t.Errorf("run.yaml = %q, want run id", data)
	}
}
