package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/game"
	"github.com/pthm-cable/meadow/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without the terminal UI")
	logStats := flag.Bool("log-stats", false, "Output window and perf stats via slog")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for text snapshots (bookmarks and 's' key)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and chart")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = until both animals are extinct in headless mode)")
	prompt := flag.Bool("prompt", false, "Ask for initial populations and starting season")
	logFile := flag.String("log-file", "", "Write logs to this file (the terminal UI discards logs otherwise)")

	flag.Parse()

	if err := run(options{
		configPath:  *configPath,
		headless:    *headless,
		logStats:    *logStats,
		snapshotDir: *snapshotDir,
		outputDir:   *outputDir,
		seed:        *seed,
		maxTicks:    *maxTicks,
		prompt:      *prompt,
		logFile:     *logFile,
	}); err != nil {
		slog.Error("meadow failed", "error", err)
		fmt.Fprintf(os.Stderr, "meadow: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	headless    bool
	logStats    bool
	snapshotDir string
	outputDir   string
	seed        int64
	maxTicks    int
	prompt      bool
	logFile     string
}

func run(opts options) error {
	// Initialize config before anything else
	if err := config.Init(opts.configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg().Clone()

	// Set up slog (JSON to stdout for headless runs, to a file or nowhere under the UI)
	logOut, closeLog, err := logWriter(opts.headless, opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	// Set up seed
	rngSeed := opts.seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	runID := uuid.New().String()

	if opts.prompt {
		setup := ui.PromptSetup(os.Stdin, os.Stdout, game.SetupFromConfig(cfg), cfg.Derived.Capacity)
		cfg.Population.InitialGrass = setup.InitialGrass
		cfg.Population.InitialRabbits = setup.InitialRabbits
		cfg.Population.InitialWolves = setup.InitialWolves
		cfg.Season.Start = int(setup.StartingSeason)
	}

	g, err := game.NewGame(game.Options{
		Config:      cfg,
		Seed:        rngSeed,
		RunID:       runID,
		LogStats:    opts.logStats,
		OutputDir:   opts.outputDir,
		SnapshotDir: opts.snapshotDir,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting simulation",
		"run_id", runID,
		"seed", rngSeed,
		"headless", opts.headless,
		"max_ticks", opts.maxTicks,
	)

	if opts.headless {
		runHeadless(ctx, g, opts.maxTicks)
	} else if err := runTerminal(ctx, g, cfg, opts.snapshotDir); err != nil {
		g.Close()
		return err
	}

	if err := g.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	printSummary(os.Stdout, g)
	return nil
}

// runHeadless steps until max ticks, or until both animal species are gone
// when maxTicks is 0.
func runHeadless(ctx context.Context, g *game.Game, maxTicks int) {
	for ctx.Err() == nil {
		g.Step()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
		if maxTicks == 0 && g.AnimalsExtinct() {
			slog.Info("animals extinct", "tick", g.Tick())
			return
		}
	}
	slog.Info("interrupted", "tick", g.Tick())
}

func runTerminal(ctx context.Context, g *game.Game, cfg *config.Config, snapshotDir string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	d := ui.NewDriver(screen, g, ui.DriverOptions{Display: cfg.Display, SnapshotDir: snapshotDir})
	return d.Run(ctx)
}

func logWriter(headless bool, path string) (io.Writer, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if headless {
		return os.Stdout, func() {}, nil
	}
	return io.Discard, func() {}, nil
}

func printSummary(w io.Writer, g *game.Game) {
	c := g.Counters()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Thanks for running the meadow simulation!")
	fmt.Fprintf(w, "  Grass regrows by season | starting season: %s\n", g.Setup().StartingSeason)
	fmt.Fprintf(w, "  Final tick %d: grass %d, rabbits %d, wolves %d\n", c.Tick, c.Grass, c.Rabbits, c.Wolves)
	fmt.Fprintln(w, "  Food chain: grass -> rabbits -> wolves")
	fmt.Fprintln(w)
}
