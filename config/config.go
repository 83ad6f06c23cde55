// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// NumSeasons is the length of the seasonal cycle.
const NumSeasons = 4

// Config holds all simulation configuration parameters.
type Config struct {
	Grid         GridConfig         `yaml:"grid"`
	Population   PopulationConfig   `yaml:"population"`
	Season       SeasonConfig       `yaml:"season"`
	Species      SpeciesSet         `yaml:"species"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Spawn        SpawnConfig        `yaml:"spawn"`
	History      HistoryConfig      `yaml:"history"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
	Display      DisplayConfig      `yaml:"display"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds the fixed world dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PopulationConfig holds the counts placed by a reset.
type PopulationConfig struct {
	InitialGrass   int `yaml:"initial_grass"`
	InitialRabbits int `yaml:"initial_rabbits"`
	InitialWolves  int `yaml:"initial_wolves"`
}

// SeasonConfig holds the seasonal cycle. Slices are indexed by season
// (spring, summer, autumn, winter).
type SeasonConfig struct {
	Start              int       `yaml:"start"`                // 0=spring .. 3=winter
	TicksPerSeason     int       `yaml:"ticks_per_season"`     // Ticks before the season advances
	GrowthChance       []float64 `yaml:"growth_chance"`        // Per empty cell per tick
	MoveCostMultiplier []int     `yaml:"move_cost_multiplier"` // Applied to species move_cost
}

// SpeciesConfig holds the energy and life-history parameters of one animal kind.
type SpeciesConfig struct {
	InitialEnergy   int     `yaml:"initial_energy"`   // Energy when placed by the spawner
	MaxAgeBase      int     `yaml:"max_age_base"`     // max_age = base + U[0, jitter)
	MaxAgeJitter    int     `yaml:"max_age_jitter"`
	MoveCost        int     `yaml:"move_cost"`        // Paid every tick, moving or not
	FoodGain        int     `yaml:"food_gain"`        // Gained by stepping onto food
	SearchRadius    int     `yaml:"search_radius"`    // Square window for nearest-food search
	BreedChance     float64 `yaml:"breed_chance"`     // Per tick once above threshold
	BreedThreshold  int     `yaml:"breed_threshold"`  // Minimum energy to roll for breeding
	OffspringEnergy int     `yaml:"offspring_energy"` // Given to the newborn, taken from the parent
}

// SpeciesSet holds per-kind parameters.
type SpeciesSet struct {
	Rabbit SpeciesConfig `yaml:"rabbit"`
	Wolf   SpeciesConfig `yaml:"wolf"`
}

// ReproductionConfig holds offspring placement parameters.
type ReproductionConfig struct {
	PlacementAttempts int `yaml:"placement_attempts"` // Random neighbor probes per birth
	ParentMinEnergy   int `yaml:"parent_min_energy"`  // Parent energy floor after birthing
}

// SpawnConfig holds random placement parameters.
type SpawnConfig struct {
	AttemptsPerCell int `yaml:"attempts_per_cell"` // Attempt budget = capacity * this
}

// HistoryConfig holds the rolling population history size.
type HistoryConfig struct {
	Size int `yaml:"size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Ticks per stats window
	BookmarkHistorySize int `yaml:"bookmark_history_size"`
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DisplayConfig holds terminal driver settings.
type DisplayConfig struct {
	DelayMS       int `yaml:"delay_ms"`
	MinDelayMS    int `yaml:"min_delay_ms"`
	DelayStepMS   int `yaml:"delay_step_ms"`
	MessageFrames int `yaml:"message_frames"`
	ChartHeight   int `yaml:"chart_height"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Capacity      int // Grid.Width * Grid.Height
	SpawnAttempts int // Capacity * Spawn.AttemptsPerCell
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Season.GrowthChance = append([]float64(nil), c.Season.GrowthChance...)
	out.Season.MoveCostMultiplier = append([]int(nil), c.Season.MoveCostMultiplier...)
	return &out
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Capacity = c.Grid.Width * c.Grid.Height
	c.Derived.SpawnAttempts = c.Derived.Capacity * c.Spawn.AttemptsPerCell
}

// Refresh recomputes derived values after fields were changed in code.
func (c *Config) Refresh() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
