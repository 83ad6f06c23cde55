package game

import (
	"fmt"

	"github.com/pthm-cable/meadow/config"
	"github.com/pthm-cable/meadow/systems"
)

// Setup holds the options a reset recognizes.
type Setup struct {
	InitialGrass   int
	InitialRabbits int
	InitialWolves  int
	StartingSeason systems.Season
}

// SetupFromConfig returns the setup described by the population and season
// sections of cfg.
func SetupFromConfig(cfg *config.Config) Setup {
	return Setup{
		InitialGrass:   cfg.Population.InitialGrass,
		InitialRabbits: cfg.Population.InitialRabbits,
		InitialWolves:  cfg.Population.InitialWolves,
		StartingSeason: systems.Season(cfg.Season.Start),
	}
}

// Validate rejects negative counts and a starting season outside 0..3.
// Counts above grid capacity are accepted; the spawner places what fits.
func (s Setup) Validate() error {
	if err := config.ValidatePopulation(s.InitialGrass, s.InitialRabbits, s.InitialWolves); err != nil {
		return fmt.Errorf("invalid setup: %w", err)
	}
	if err := config.ValidateSeason(int(s.StartingSeason)); err != nil {
		return fmt.Errorf("invalid setup: %w", err)
	}
	return nil
}
