package systems

import (
	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/config"
)

// Rules bundles the parameters every pass reads. It is built once from the
// loaded configuration and passed explicitly.
type Rules struct {
	Rabbit config.SpeciesConfig
	Wolf   config.SpeciesConfig

	Seasons        SeasonTable
	TicksPerSeason int

	PlacementAttempts    int // neighbor probes per birth
	ParentMinEnergy      int // floor applied to a parent after birthing
	SpawnAttemptsPerCell int
}

// NewRules extracts the rule parameters from cfg.
func NewRules(cfg *config.Config) *Rules {
	return &Rules{
		Rabbit:               cfg.Species.Rabbit,
		Wolf:                 cfg.Species.Wolf,
		Seasons:              NewSeasonTable(cfg.Season),
		TicksPerSeason:       cfg.Season.TicksPerSeason,
		PlacementAttempts:    cfg.Reproduction.PlacementAttempts,
		ParentMinEnergy:      cfg.Reproduction.ParentMinEnergy,
		SpawnAttemptsPerCell: cfg.Spawn.AttemptsPerCell,
	}
}

// Species returns the parameters for an animal kind, or nil for grass and empty.
func (r *Rules) Species(kind components.Kind) *config.SpeciesConfig {
	switch kind {
	case components.KindRabbit:
		return &r.Rabbit
	case components.KindWolf:
		return &r.Wolf
	}
	return nil
}

// Season returns the season in effect at tick for a run started in start.
func (r *Rules) Season(start Season, tick int) Season {
	return SeasonAt(start, tick, r.TicksPerSeason)
}
