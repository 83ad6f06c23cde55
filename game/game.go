package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/systems"
	"github.com/pthm-cable/meadow/telemetry"
)

// Options configures a new Game.
type Options struct {
	Config *config.Config // nil loads the embedded defaults

	Seed int64        // seeds the PRNG when Rand is nil
	Rand systems.Rand // overrides the seeded PRNG, mainly for tests

	RunID       string // stamped into logs and run.yaml
	LogStats    bool   // log window and perf stats
	OutputDir   string // CSV, config and chart output; empty disables
	SnapshotDir string // text snapshots on bookmarks; empty disables

	// StatsCallback is called on every window flush.
	StatsCallback func(stats telemetry.WindowStats)
}

// CellView is the read-only view of one cell used for rendering.
type CellView struct {
	Kind     components.Kind
	Maturity int
}

// Counters holds the scalar state of the live grid.
type Counters struct {
	Grass   int
	Rabbits int
	Wolves  int
	Tick    int
	Season  systems.Season
}

// Game owns the complete simulation state: two grid buffers, counters,
// history and telemetry. It is not safe for concurrent use.
type Game struct {
	cfg      *config.Config
	rules    *systems.Rules
	registry *systems.SystemRegistry
	rng      systems.Rand
	rngSeed  int64
	runID    string

	// live is the current grid; next is scratch space for the step.
	live, next *systems.Grid

	setup    Setup
	tick     int
	census   systems.Census
	history  *History
	peaks    Peaks
	trace    *telemetry.PopulationTrace
	started  time.Time
	lastStep StepReport

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	logStats         bool
	snapshotDir      string
}

// StepReport holds what happened during the most recent step.
type StepReport struct {
	Grown     int
	Moves     systems.MoveReport
	Lifecycle systems.LifecycleReport
}

// NewGame validates the configuration, allocates both grid buffers and
// performs an initial reset from the configured population.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(""); err != nil {
			return nil, err
		}
	}
	if err := cfg.Refresh(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	g := &Game{
		cfg:              cfg,
		rules:            systems.NewRules(cfg),
		registry:         systems.NewSystemRegistry(),
		rng:              rng,
		rngSeed:          opts.Seed,
		runID:            opts.RunID,
		live:             systems.NewGrid(cfg.Grid.Width, cfg.Grid.Height),
		next:             systems.NewGrid(cfg.Grid.Width, cfg.Grid.Height),
		history:          NewHistory(cfg.History.Size),
		trace:            telemetry.NewPopulationTrace(),
		started:          time.Now(),
		collector:        telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize),
		statsCallback:    opts.StatsCallback,
		logStats:         opts.LogStats,
		snapshotDir:      opts.SnapshotDir,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}
	info := telemetry.RunInfo{RunID: g.runID, Seed: g.rngSeed, StartedAt: g.started.Format(time.RFC3339)}
	if err := om.WriteRunInfo(info); err != nil {
		om.Close()
		return nil, err
	}

	if err := g.Reset(SetupFromConfig(cfg)); err != nil {
		om.Close()
		return nil, err
	}
	return g, nil
}

// Reset reinitializes the grid, counters, history and tick, then spawns
// grass, rabbits and wolves in that order. An invalid setup is rejected
// before any state changes.
func (g *Game) Reset(setup Setup) error {
	if err := setup.Validate(); err != nil {
		return err
	}

	g.setup = setup
	g.live.Clear()
	g.next.Clear()
	g.tick = 0
	g.census = systems.Census{}
	g.history.Clear()
	g.peaks = Peaks{}
	g.trace.Reset()
	g.lastStep = StepReport{}
	g.collector.Reset(0)
	g.bookmarkDetector = telemetry.NewBookmarkDetector(g.cfg.Telemetry.BookmarkHistorySize)

	g.census.Grass += systems.Spawn(g.live, components.KindGrass, setup.InitialGrass, g.rules, g.rng)
	g.census.Rabbits += systems.Spawn(g.live, components.KindRabbit, setup.InitialRabbits, g.rules, g.rng)
	g.census.Wolves += systems.Spawn(g.live, components.KindWolf, setup.InitialWolves, g.rules, g.rng)

	slog.Info("reset",
		"run_id", g.runID,
		"grass", g.census.Grass,
		"rabbits", g.census.Rabbits,
		"wolves", g.census.Wolves,
		"season", setup.StartingSeason.String(),
	)
	return nil
}

// Step advances the simulation by exactly one tick.
func (g *Game) Step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseSeason)
	season := g.rules.Season(g.setup.StartingSeason, g.tick)

	g.perfCollector.StartPhase(telemetry.PhaseGrass)
	grown := systems.GrowGrass(g.live, g.rules.Seasons.GrowthChance(season), g.rng)

	g.perfCollector.StartPhase(telemetry.PhaseMovement)
	moves := systems.ResolveMoves(g.live, g.next, g.rules, season, g.rng)

	g.perfCollector.StartPhase(telemetry.PhaseLifecycle)
	life := systems.Lifecycle(g.next, g.rules, g.rng)

	g.live, g.next = g.next, g.live
	g.census = life.Census
	g.tick++
	g.lastStep = StepReport{Grown: grown, Moves: moves, Lifecycle: life}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	sample := Sample{Rabbits: g.census.Rabbits, Wolves: g.census.Wolves}
	g.history.Push(sample)
	g.peaks.observe(sample)
	g.trace.Record(g.tick, g.census.Grass, g.census.Rabbits, g.census.Wolves)
	g.recordTelemetry()
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// Cell returns the kind and grass maturity at (row, col). Coordinates off
// the grid read as empty.
func (g *Game) Cell(row, col int) CellView {
	if !g.live.InBounds(row, col) {
		return CellView{}
	}
	c := g.live.At(row, col)
	return CellView{Kind: c.Kind, Maturity: c.Maturity}
}

// Counters returns the population counts, tick and current season.
func (g *Game) Counters() Counters {
	return Counters{
		Grass:   g.census.Grass,
		Rabbits: g.census.Rabbits,
		Wolves:  g.census.Wolves,
		Tick:    g.tick,
		Season:  g.Season(),
	}
}

// History returns the recent (rabbits, wolves) samples, oldest first.
func (g *Game) History() []Sample {
	return g.history.Samples()
}

// HistoryCap returns the maximum number of samples History can return.
func (g *Game) HistoryCap() int {
	return g.history.Cap()
}

// Peaks returns the population extremes since the last reset.
func (g *Game) Peaks() Peaks {
	return g.peaks
}

// Setup returns the setup of the last reset.
func (g *Game) Setup() Setup {
	return g.setup
}

// LastStep returns the pass reports of the most recent step.
func (g *Game) LastStep() StepReport {
	return g.lastStep
}

// Width returns the grid width in cells.
func (g *Game) Width() int { return g.live.Width() }

// Height returns the grid height in cells.
func (g *Game) Height() int { return g.live.Height() }

// Tick returns the number of steps since the last reset.
func (g *Game) Tick() int { return g.tick }

// Season returns the season at the current tick.
func (g *Game) Season() systems.Season {
	return g.rules.Season(g.setup.StartingSeason, g.tick)
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// RunID returns the run identifier.
func (g *Game) RunID() string { return g.runID }

// PerfStats returns rolling step timings.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// RecordFrame notes a rendered frame for FPS reporting.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}

// AnimalsExtinct reports whether neither rabbits nor wolves remain.
func (g *Game) AnimalsExtinct() bool {
	return g.census.Rabbits == 0 && g.census.Wolves == 0
}

// Close writes the population chart and closes telemetry output.
func (g *Game) Close() error {
	if g.logStats {
		g.logPerfStats()
	}
	g.logSummary()

	var firstErr error
	if err := g.outputManager.WriteChart(g.trace); err != nil {
		firstErr = err
	}
	if err := g.outputManager.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
