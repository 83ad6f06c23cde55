package telemetry

import (
	"testing"

	"github.com/pthm-cable/meadow/components"
)

func TestCollector_WindowLifecycle(t *testing.T) {
	c := NewCollector(100)

	if c.ShouldFlush(99) {
		t.Error("flush due before the window elapsed")
	}
	if !c.ShouldFlush(100) {
		t.Error("flush not due at window end")
	}

	c.RecordGrowth(7)
	c.RecordGrowth(3)
	c.RecordMoves(4, 1, 12, 2)
	c.RecordBirths(components.KindRabbit, 5)
	c.RecordBirths(components.KindWolf, 1)
	c.RecordDeaths(components.KindRabbit, 2, 1, 60)

	stats := c.Flush(100, "Summer", 200, 40, 6, []float64{10, 20}, nil)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 100 || stats.Season != "Summer" {
		t.Errorf("window = %d..%d %s", stats.WindowStartTick, stats.WindowEndTick, stats.Season)
	}
	if stats.GrassGrown != 10 || stats.Grazes != 12 || stats.Kills != 2 {
		t.Errorf("events = grown %d grazes %d kills %d", stats.GrassGrown, stats.Grazes, stats.Kills)
	}
	if stats.BlockedMoves != 4 || stats.Displaced != 1 {
		t.Errorf("conflicts = %d/%d", stats.BlockedMoves, stats.Displaced)
	}
	if stats.RabbitBirths != 5 || stats.WolfBirths != 1 {
		t.Errorf("births = %d/%d", stats.RabbitBirths, stats.WolfBirths)
	}
	if stats.RabbitStarved != 2 || stats.RabbitOldAge != 1 || stats.RabbitLifespan != 20 {
		t.Errorf("rabbit deaths = %d/%d lifespan %v", stats.RabbitStarved, stats.RabbitOldAge, stats.RabbitLifespan)
	}
	if stats.WolfLifespan != 0 {
		t.Errorf("wolf lifespan = %v with no deaths", stats.WolfLifespan)
	}
	if stats.RabbitEnergyMean != 15 || stats.WolfEnergyMean != 0 {
		t.Errorf("energy means = %v/%v", stats.RabbitEnergyMean, stats.WolfEnergyMean)
	}

	// Counters reset and the next window starts at the flush tick
	next := c.Flush(200, "Summer", 0, 0, 0, nil, nil)
	if next.WindowStartTick != 100 || next.GrassGrown != 0 || next.RabbitBirths != 0 {
		t.Errorf("second window not reset: %+v", next)
	}
	if c.ShouldFlush(250) {
		t.Error("flush due mid-window")
	}
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector(0)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("window = %d, want clamp to 1", c.WindowDurationTicks())
	}
	c.RecordGrowth(5)
	c.Reset(40)
	stats := c.Flush(41, "Spring", 0, 0, 0, nil, nil)
	if stats.GrassGrown != 0 || stats.WindowStartTick != 40 {
		t.Errorf("after reset: %+v", stats)
	}
}
