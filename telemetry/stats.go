package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one telemetry window.
type WindowStats struct {
	WindowStartTick int    `csv:"-"`
	WindowEndTick   int    `csv:"window_end"`
	Season          string `csv:"season"`

	// Population counts at window end
	Grass   int `csv:"grass"`
	Rabbits int `csv:"rabbits"`
	Wolves  int `csv:"wolves"`

	// Events during window
	GrassGrown    int `csv:"grass_grown"`
	Grazes        int `csv:"grazes"`
	Kills         int `csv:"kills"`
	RabbitBirths  int `csv:"rabbit_births"`
	WolfBirths    int `csv:"wolf_births"`
	RabbitStarved int `csv:"rabbit_starved"`
	WolfStarved   int `csv:"wolf_starved"`
	RabbitOldAge  int `csv:"rabbit_old_age"`
	WolfOldAge    int `csv:"wolf_old_age"`

	// Movement conflicts
	BlockedMoves int `csv:"blocked_moves"`
	Displaced    int `csv:"displaced"`

	// Mean age at death, over deaths in the window
	RabbitLifespan float64 `csv:"rabbit_lifespan"`
	WolfLifespan   float64 `csv:"wolf_lifespan"`

	// Energy distribution (sampled at window end)
	RabbitEnergyMean float64 `csv:"rabbit_energy_mean"`
	RabbitEnergyStd  float64 `csv:"rabbit_energy_std"`
	RabbitEnergyP10  float64 `csv:"rabbit_energy_p10"`
	RabbitEnergyP50  float64 `csv:"rabbit_energy_p50"`
	RabbitEnergyP90  float64 `csv:"rabbit_energy_p90"`

	WolfEnergyMean float64 `csv:"wolf_energy_mean"`
	WolfEnergyStd  float64 `csv:"wolf_energy_std"`
	WolfEnergyP10  float64 `csv:"wolf_energy_p10"`
	WolfEnergyP50  float64 `csv:"wolf_energy_p50"`
	WolfEnergyP90  float64 `csv:"wolf_energy_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// EnergyStats summarises an energy sample.
type EnergyStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// ComputeEnergyStats calculates mean, population standard deviation and
// percentiles from energy values.
func ComputeEnergyStats(values []float64) EnergyStats {
	if len(values) == 0 {
		return EnergyStats{}
	}

	mean, variance := stat.PopMeanVariance(values, nil)
	std := math.Sqrt(variance)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return EnergyStats{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.String("season", s.Season),
		slog.Int("grass", s.Grass),
		slog.Int("rabbits", s.Rabbits),
		slog.Int("wolves", s.Wolves),
		slog.Int("grass_grown", s.GrassGrown),
		slog.Int("grazes", s.Grazes),
		slog.Int("kills", s.Kills),
		slog.Int("rabbit_births", s.RabbitBirths),
		slog.Int("wolf_births", s.WolfBirths),
		slog.Int("rabbit_starved", s.RabbitStarved),
		slog.Int("wolf_starved", s.WolfStarved),
		slog.Int("rabbit_old_age", s.RabbitOldAge),
		slog.Int("wolf_old_age", s.WolfOldAge),
		slog.Int("blocked_moves", s.BlockedMoves),
		slog.Int("displaced", s.Displaced),
		slog.Float64("rabbit_lifespan", s.RabbitLifespan),
		slog.Float64("wolf_lifespan", s.WolfLifespan),
		slog.Float64("rabbit_energy_mean", s.RabbitEnergyMean),
		slog.Float64("rabbit_energy_p50", s.RabbitEnergyP50),
		slog.Float64("wolf_energy_mean", s.WolfEnergyMean),
		slog.Float64("wolf_energy_p50", s.WolfEnergyP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"season", s.Season,
		"grass", s.Grass,
		"rabbits", s.Rabbits,
		"wolves", s.Wolves,
		"grass_grown", s.GrassGrown,
		"grazes", s.Grazes,
		"kills", s.Kills,
		"rabbit_births", s.RabbitBirths,
		"wolf_births", s.WolfBirths,
		"rabbit_starved", s.RabbitStarved,
		"wolf_starved", s.WolfStarved,
		"rabbit_old_age", s.RabbitOldAge,
		"wolf_old_age", s.WolfOldAge,
		"blocked_moves", s.BlockedMoves,
		"displaced", s.Displaced,
		"rabbit_lifespan", s.RabbitLifespan,
		"wolf_lifespan", s.WolfLifespan,
		"rabbit_energy_mean", s.RabbitEnergyMean,
		"rabbit_energy_std", s.RabbitEnergyStd,
		"rabbit_energy_p10", s.RabbitEnergyP10,
		"rabbit_energy_p50", s.RabbitEnergyP50,
		"rabbit_energy_p90", s.RabbitEnergyP90,
		"wolf_energy_mean", s.WolfEnergyMean,
		"wolf_energy_std", s.WolfEnergyStd,
		"wolf_energy_p10", s.WolfEnergyP10,
		"wolf_energy_p50", s.WolfEnergyP50,
		"wolf_energy_p90", s.WolfEnergyP90,
	)
}
