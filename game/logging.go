package game

import (
	"log/slog"
	"time"
)

// logPerfStats logs the average time of each pass, in pipeline order.
func (g *Game) logPerfStats() {
	stats := g.perfCollector.Stats()
	slog.Info("perf summary",
		"tick", g.tick,
		"avg_tick", stats.AvgTickDuration.Round(time.Microsecond).String(),
		"ticks_per_sec", int(stats.TicksPerSecond),
	)

	for _, id := range g.registry.IDs() {
		avg, ok := stats.PhaseAvg[id]
		if !ok {
			continue
		}
		slog.Info("perf pass",
			"pass", g.registry.GetName(id),
			"avg", avg.Round(time.Microsecond).String(),
			"pct", stats.PhasePct[id],
		)
	}
}

// logSummary logs the final counters and population extremes.
func (g *Game) logSummary() {
	c := g.Counters()
	slog.Info("run summary",
		"run_id", g.runID,
		"ticks", c.Tick,
		"season", c.Season.String(),
		"start_season", g.setup.StartingSeason.String(),
		"grass", c.Grass,
		"rabbits", c.Rabbits,
		"wolves", c.Wolves,
		"max_rabbits", g.peaks.MaxRabbits,
		"max_wolves", g.peaks.MaxWolves,
		"min_rabbits", g.peaks.MinRabbits,
		"min_wolves", g.peaks.MinWolves,
		"elapsed", time.Since(g.started).Round(time.Millisecond).String(),
	)
}
