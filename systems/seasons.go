package systems

import "github.com/pthm-cable/meadow/config"

// Season is one phase of the four-part cycle.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// String returns the display name of the season.
func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Autumn:
		return "Autumn"
	case Winter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// SeasonAt derives the season from the starting season and elapsed ticks.
// It has no state; recomputing it for the same inputs always agrees.
func SeasonAt(start Season, tick, ticksPerSeason int) Season {
	return Season((int(start) + tick/ticksPerSeason) % config.NumSeasons)
}

// SeasonTable holds the season-dependent rule parameters.
type SeasonTable struct {
	Growth         [config.NumSeasons]float64 // chance an empty cell becomes grass
	MoveMultiplier [config.NumSeasons]int     // scales every animal's move cost
}

// NewSeasonTable copies the per-season parameters out of cfg.
func NewSeasonTable(cfg config.SeasonConfig) SeasonTable {
	var t SeasonTable
	copy(t.Growth[:], cfg.GrowthChance)
	copy(t.MoveMultiplier[:], cfg.MoveCostMultiplier)
	return t
}

// GrowthChance returns the per-cell grass growth probability in season s.
func (t SeasonTable) GrowthChance(s Season) float64 {
	return t.Growth[s]
}

// MoveCostMultiplier returns the move cost scale in season s.
func (t SeasonTable) MoveCostMultiplier(s Season) int {
	return t.MoveMultiplier[s]
}
