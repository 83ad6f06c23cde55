// Package telemetry provides ecosystem health tracking, bookmarking, and snapshots.
package telemetry

import "github.com/pthm-cable/meadow/components"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int

	// Current window tracking
	windowStartTick int

	// Event counters for current window
	grassGrown int
	grazes     int
	kills      int
	blocked    int
	displaced  int
	births     [components.NumKinds]int
	starved    [components.NumKinds]int
	oldAge     [components.NumKinds]int
	deadAge    [components.NumKinds]int
}

// NewCollector creates a new stats collector.
// windowTicks: how many ticks each stats window lasts
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowDurationTicks: windowTicks}
}

// RecordGrowth records cells that became grass this tick.
func (c *Collector) RecordGrowth(n int) {
	c.grassGrown += n
}

// RecordMoves records the outcome of one movement pass.
func (c *Collector) RecordMoves(blocked, displaced, grazes, kills int) {
	c.blocked += blocked
	c.displaced += displaced
	c.grazes += grazes
	c.kills += kills
}

// RecordBirths records n births of kind.
func (c *Collector) RecordBirths(kind components.Kind, n int) {
	c.births[kind] += n
}

// RecordDeaths records deaths of kind by cause, with the summed age of the dead.
func (c *Collector) RecordDeaths(kind components.Kind, starved, oldAge, ageSum int) {
	c.starved[kind] += starved
	c.oldAge[kind] += oldAge
	c.deadAge[kind] += ageSum
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the population at window end and the energy of every
// living rabbit and wolf.
func (c *Collector) Flush(
	currentTick int,
	season string,
	grass, rabbits, wolves int,
	rabbitEnergies, wolfEnergies []float64,
) WindowStats {
	re := ComputeEnergyStats(rabbitEnergies)
	we := ComputeEnergyStats(wolfEnergies)

	r, w := components.KindRabbit, components.KindWolf
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Season:          season,

		Grass:   grass,
		Rabbits: rabbits,
		Wolves:  wolves,

		GrassGrown:    c.grassGrown,
		Grazes:        c.grazes,
		Kills:         c.kills,
		RabbitBirths:  c.births[r],
		WolfBirths:    c.births[w],
		RabbitStarved: c.starved[r],
		WolfStarved:   c.starved[w],
		RabbitOldAge:  c.oldAge[r],
		WolfOldAge:    c.oldAge[w],

		BlockedMoves: c.blocked,
		Displaced:    c.displaced,

		RabbitLifespan: c.meanLifespan(r),
		WolfLifespan:   c.meanLifespan(w),

		RabbitEnergyMean: re.Mean,
		RabbitEnergyStd:  re.Std,
		RabbitEnergyP10:  re.P10,
		RabbitEnergyP50:  re.P50,
		RabbitEnergyP90:  re.P90,

		WolfEnergyMean: we.Mean,
		WolfEnergyStd:  we.Std,
		WolfEnergyP10:  we.P10,
		WolfEnergyP50:  we.P50,
		WolfEnergyP90:  we.P90,
	}

	c.Reset(currentTick)
	return stats
}

func (c *Collector) meanLifespan(kind components.Kind) float64 {
	deaths := c.starved[kind] + c.oldAge[kind]
	if deaths == 0 {
		return 0
	}
	return float64(c.deadAge[kind]) / float64(deaths)
}

// Reset clears all counters and starts a new window at tick.
func (c *Collector) Reset(tick int) {
	*c = Collector{
		windowDurationTicks: c.windowDurationTicks,
		windowStartTick:     tick,
	}
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int {
	return c.windowDurationTicks
}
