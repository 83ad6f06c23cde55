package config

import "fmt"

// Validate reports the first invalid field. Counts may exceed grid capacity;
// the spawner places what fits.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}

	if err := ValidatePopulation(c.Population.InitialGrass, c.Population.InitialRabbits, c.Population.InitialWolves); err != nil {
		return err
	}
	if err := ValidateSeason(c.Season.Start); err != nil {
		return err
	}
	if c.Season.TicksPerSeason <= 0 {
		return fmt.Errorf("config: season.ticks_per_season must be positive, got %d", c.Season.TicksPerSeason)
	}
	if len(c.Season.GrowthChance) != NumSeasons {
		return fmt.Errorf("config: season.growth_chance needs %d entries, got %d", NumSeasons, len(c.Season.GrowthChance))
	}
	for i, p := range c.Season.GrowthChance {
		if p < 0 || p > 1 {
			return fmt.Errorf("config: season.growth_chance[%d] = %v outside [0, 1]", i, p)
		}
	}
	if len(c.Season.MoveCostMultiplier) != NumSeasons {
		return fmt.Errorf("config: season.move_cost_multiplier needs %d entries, got %d", NumSeasons, len(c.Season.MoveCostMultiplier))
	}
	for i, m := range c.Season.MoveCostMultiplier {
		if m < 0 {
			return fmt.Errorf("config: season.move_cost_multiplier[%d] = %d is negative", i, m)
		}
	}

	if err := c.Species.Rabbit.validate("rabbit"); err != nil {
		return err
	}
	if err := c.Species.Wolf.validate("wolf"); err != nil {
		return err
	}

	if c.Reproduction.PlacementAttempts < 0 {
		return fmt.Errorf("config: reproduction.placement_attempts is negative")
	}
	if c.Spawn.AttemptsPerCell < 1 {
		return fmt.Errorf("config: spawn.attempts_per_cell must be at least 1")
	}
	if c.History.Size < 1 {
		return fmt.Errorf("config: history.size must be at least 1")
	}
	if c.Telemetry.StatsWindow < 1 {
		return fmt.Errorf("config: telemetry.stats_window must be at least 1")
	}
	return nil
}

func (s SpeciesConfig) validate(name string) error {
	switch {
	case s.InitialEnergy <= 0:
		return fmt.Errorf("config: species.%s.initial_energy must be positive", name)
	case s.MaxAgeBase < 0:
		return fmt.Errorf("config: species.%s.max_age_base is negative", name)
	case s.MaxAgeJitter < 1:
		return fmt.Errorf("config: species.%s.max_age_jitter must be at least 1", name)
	case s.MoveCost < 0 || s.FoodGain < 0 || s.OffspringEnergy < 0:
		return fmt.Errorf("config: species.%s energy amounts must not be negative", name)
	case s.SearchRadius < 0:
		return fmt.Errorf("config: species.%s.search_radius is negative", name)
	case s.BreedChance < 0 || s.BreedChance > 1:
		return fmt.Errorf("config: species.%s.breed_chance = %v outside [0, 1]", name, s.BreedChance)
	}
	return nil
}

// ValidatePopulation rejects negative initial counts.
func ValidatePopulation(grass, rabbits, wolves int) error {
	if grass < 0 || rabbits < 0 || wolves < 0 {
		return fmt.Errorf("config: initial counts must not be negative (grass=%d rabbits=%d wolves=%d)", grass, rabbits, wolves)
	}
	return nil
}

// ValidateSeason rejects a starting season outside 0..3.
func ValidateSeason(season int) error {
	if season < 0 || season >= NumSeasons {
		return fmt.Errorf("config: starting season %d outside 0..%d", season, NumSeasons-1)
	}
	return nil
}
