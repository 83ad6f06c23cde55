package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/meadow/systems"
)

// Phase names for the simulation step, shared with the pass registry.
const (
	PhaseSeason    = systems.PassSeason
	PhaseGrass     = systems.PassGrass
	PhaseMovement  = systems.PassMovement
	PhaseLifecycle = systems.PassLifecycle
	PhaseTelemetry = systems.PassTelemetry
)

// phaseOrder fixes the slot of each phase and the order they are logged in.
var phaseOrder = [...]string{PhaseSeason, PhaseGrass, PhaseMovement, PhaseLifecycle, PhaseTelemetry}

func phaseSlot(name string) int {
	for i, p := range phaseOrder {
		if p == name {
			return i
		}
	}
	return -1
}

// stepTiming is the wall time of one step split by phase.
type stepTiming struct {
	total  time.Duration
	phases [len(phaseOrder)]time.Duration
	ran    [len(phaseOrder)]bool
}

// PerfCollector keeps step timings for the last N steps and the interval
// between rendered frames. Time spent outside a known phase counts toward
// the step total only.
type PerfCollector struct {
	ring  []stepTiming
	next  int
	count int

	cur        stepTiming
	stepStart  time.Time
	phaseStart time.Time
	phase      int

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window steps.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{ring: make([]stepTiming, window), phase: -1}
}

// StartTick begins timing a step.
func (p *PerfCollector) StartTick() {
	p.cur = stepTiming{}
	p.stepStart = time.Now()
	p.phase = -1
}

// StartPhase closes the running phase, if any, and opens the named one.
func (p *PerfCollector) StartPhase(name string) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phaseSlot(name)
	p.phaseStart = now
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase < 0 {
		return
	}
	p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	p.cur.ran[p.phase] = true
	p.phase = -1
}

// EndTick closes the step and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.cur.total = now.Sub(p.stepStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
}

// RecordFrame notes that a frame was drawn.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarises the timing window. PhaseAvg and PhasePct are keyed by
// phase name and hold only phases that ran.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	TicksPerSecond  float64

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	FPS float64 // from the last frame interval; 0 until two frames are drawn
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var phases [len(phaseOrder)]time.Duration
	var ran [len(phaseOrder)]bool
	for i, st := range p.ring[:p.count] {
		total += st.total
		if i == 0 || st.total < s.MinTickDuration {
			s.MinTickDuration = st.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, st.total)
		for j := range phases {
			phases[j] += st.phases[j]
			ran[j] = ran[j] || st.ran[j]
		}
	}

	n := time.Duration(p.count)
	s.AvgTickDuration = total / n
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	for j, name := range phaseOrder {
		if !ran[j] {
			continue
		}
		avg := phases[j] / n
		s.PhaseAvg[name] = avg
		if s.AvgTickDuration > 0 {
			s.PhasePct[name] = float64(avg) / float64(s.AvgTickDuration) * 100
		}
	}
	return s
}

// LogStats logs the window at info level.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, name := range phaseOrder {
		if pct, ok := s.PhasePct[name]; ok {
			attrs = append(attrs, name+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int     `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	SeasonPct    float64 `csv:"season_pct"`
	GrassPct     float64 `csv:"grass_pct"`
	MovementPct  float64 `csv:"movement_pct"`
	LifecyclePct float64 `csv:"lifecycle_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		SeasonPct:    s.PhasePct[PhaseSeason],
		GrassPct:     s.PhasePct[PhaseGrass],
		MovementPct:  s.PhasePct[PhaseMovement],
		LifecyclePct: s.PhasePct[PhaseLifecycle],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
