package game

import (
	"log/slog"
	"strings"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/telemetry"
)

// recordTelemetry feeds the last step's pass reports into the collector.
func (g *Game) recordTelemetry() {
	s := g.lastStep
	g.collector.RecordGrowth(s.Grown)
	g.collector.RecordMoves(s.Moves.Blocked, s.Moves.Displaced, s.Moves.Grazes, s.Moves.Kills)
	for _, kind := range []components.Kind{components.KindRabbit, components.KindWolf} {
		g.collector.RecordBirths(kind, s.Lifecycle.Births[kind])
		g.collector.RecordDeaths(kind, s.Lifecycle.Starved[kind], s.Lifecycle.OldAge[kind], s.Lifecycle.DeadAge[kind])
	}
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	rabbitEnergies, wolfEnergies := g.sampleEnergies()

	stats := g.collector.Flush(g.tick, g.Season().String(),
		g.census.Grass, g.census.Rabbits, g.census.Wolves,
		rabbitEnergies, wolfEnergies)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	// Check for bookmarks
	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}

		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}

		// Save snapshot on bookmark
		if g.snapshotDir != "" {
			if _, err := g.SaveSnapshot(g.snapshotDir, &bm); err != nil {
				slog.Error("failed to save snapshot", "error", err)
			}
		}
	}
}

// sampleEnergies collects the energy of every living animal.
func (g *Game) sampleEnergies() (rabbits, wolves []float64) {
	g.live.Each(func(c *components.Cell) {
		switch c.Kind {
		case components.KindRabbit:
			rabbits = append(rabbits, float64(c.Energy))
		case components.KindWolf:
			wolves = append(wolves, float64(c.Energy))
		}
	})
	return rabbits, wolves
}

// Snapshot builds the text snapshot of the live grid.
func (g *Game) Snapshot(bookmark *telemetry.Bookmark) *telemetry.TextSnapshot {
	rows := make([]string, g.Height())
	var sb strings.Builder
	for row := range rows {
		sb.Reset()
		for col := 0; col < g.Width(); col++ {
			sb.WriteByte(g.live.At(row, col).Kind.SnapshotGlyph())
		}
		rows[row] = sb.String()
	}

	return &telemetry.TextSnapshot{
		Tick:     g.tick,
		Season:   g.Season().String(),
		Grass:    g.census.Grass,
		Rabbits:  g.census.Rabbits,
		Wolves:   g.census.Wolves,
		Rows:     rows,
		Bookmark: bookmark,
	}
}

// SaveSnapshot writes the text snapshot into dir and returns its path.
func (g *Game) SaveSnapshot(dir string, bookmark *telemetry.Bookmark) (string, error) {
	path, err := telemetry.SaveSnapshot(g.Snapshot(bookmark), dir)
	if err != nil {
		return "", err
	}
	slog.Info("snapshot saved", "path", path, "tick", g.tick)
	return path, nil
}
