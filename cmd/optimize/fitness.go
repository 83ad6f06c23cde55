package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/game"
	"github.com/pthm-cable/meadow/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
	lastCoexist float64 // mean coexistence ticks from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator. baseCfg is never modified.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// LastCoexistence returns the mean coexistence ticks from the most recent
// evaluation.
func (fe *FitnessEvaluator) LastCoexistence() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastCoexist
}

// Minimum viable population: if either species stays below this for
// extinctionGraceTicks consecutive ticks, it counts as functionally extinct.
const (
	minViablePop         = 3
	extinctionGraceTicks = 60
	warmupTicks          = 20
)

// runResult holds the results from a single simulation run.
type runResult struct {
	coexistTicks int                     // ticks before functional extinction (or maxTicks if both survived)
	windowStats  []telemetry.WindowStats // collected via StatsCallback each window
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
	coexist float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel; every run owns its game and config
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result := fe.runSimulation(x, s)
			quality := computeQuality(result.windowStats)
			results[idx] = seedResult{
				fitness: computeFitness(result.coexistTicks, quality),
				quality: quality,
				coexist: float64(result.coexistTicks),
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality, totalCoexist float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
		totalCoexist += r.coexist
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.lastCoexist = totalCoexist / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless simulation run.
// Runs until functional extinction or maxTicks, whichever comes first.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{}

	g, err := game.NewGame(game.Options{
		Config: cfg,
		Seed:   seed,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		return result
	}
	defer g.Close()

	// Track how long each species has been below minimum viable population
	var rabbitsBelow, wolvesBelow int

	for g.Tick() < fe.maxTicks {
		g.Step()

		tick := g.Tick()
		c := g.Counters()

		// Hard extinction: either species completely gone
		if c.Rabbits == 0 || c.Wolves == 0 {
			result.coexistTicks = tick
			return result
		}
		if tick < warmupTicks {
			continue
		}

		// Functional extinction: species below minimum viable population too long
		if c.Rabbits < minViablePop {
			rabbitsBelow++
		} else {
			rabbitsBelow = 0
		}
		if c.Wolves < minViablePop {
			wolvesBelow++
		} else {
			wolvesBelow = 0
		}

		if rabbitsBelow >= extinctionGraceTicks || wolvesBelow >= extinctionGraceTicks {
			result.coexistTicks = tick
			return result
		}
	}

	result.coexistTicks = fe.maxTicks
	return result
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(coexistTicks × (1.0 + 0.2 × quality))
// Coexistence dominates; quality adds up to 20% bonus to differentiate
// configs with similar survival.
func computeFitness(coexistTicks int, quality float64) float64 {
	return -(float64(coexistTicks) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightRatio     = 0.30
	qualityWeightStability = 0.25
	qualityWeightEnergy    = 0.25
	qualityWeightHunting   = 0.20

	qualityWarmupWindows = 1 // skip first N windows (warmup)
	qualityMinPop        = 3 // exclude windows where either species < this

	targetRatio = 6.0 // rabbits per wolf
)

// computeQuality computes ecosystem quality ∈ [0, 1] from window stats.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	var ratioSum, energySum, huntSum float64
	var count int

	rabbitCounts := make([]float64, 0, len(valid))
	wolfCounts := make([]float64, 0, len(valid))

	for _, w := range valid {
		if w.Rabbits < qualityMinPop || w.Wolves < qualityMinPop {
			continue
		}
		count++

		rabbitCounts = append(rabbitCounts, float64(w.Rabbits))
		wolfCounts = append(wolfCounts, float64(w.Wolves))

		// 1. Population ratio score
		logErr := math.Log(float64(w.Rabbits) / float64(w.Wolves) / targetRatio)
		ratioSum += math.Exp(-logErr * logErr)

		// 2. Energy health: share of animals not close to starving
		rabbitH := 1 - math.Exp(-w.RabbitEnergyP10/5.0)
		wolfH := 1 - math.Exp(-w.WolfEnergyP10/5.0)
		energySum += (rabbitH + wolfH) / 2.0

		// 3. Hunting activity: kills per wolf over the window
		killsPerWolf := float64(w.Kills) / float64(w.Wolves)
		huntSum += 1.0 - math.Exp(-killsPerWolf/2.0)
	}

	if count == 0 {
		return 0
	}
	n := float64(count)

	// 4. Population stability (CV across all valid windows)
	stabilityScore := 0.0
	if len(rabbitCounts) >= 2 {
		cvRabbits := cv(rabbitCounts)
		cvWolves := cv(wolfCounts)
		stabilityScore = math.Exp(-(cvRabbits*cvRabbits + cvWolves*cvWolves))
	}

	quality := qualityWeightRatio*ratioSum/n +
		qualityWeightStability*stabilityScore +
		qualityWeightEnergy*energySum/n +
		qualityWeightHunting*huntSum/n

	return clamp01(quality)
}

// cv computes the coefficient of variation (std/mean) for a slice of values.
func cv(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean, variance := stat.PopMeanVariance(values, nil)
	if mean == 0 {
		return 0
	}
	return math.Sqrt(variance) / mean
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}
