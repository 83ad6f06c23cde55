// Package main provides CMA-ES optimization for meadow species parameters.
package main

import (
	"math"

	"github.com/pthm-cable/meadow/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // Rounded before it reaches the config
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Rabbit
			{Name: "rabbit_breed_chance", Path: "species.rabbit.breed_chance", Min: 0.05, Max: 0.8, Default: 0.35},
			{Name: "rabbit_breed_threshold", Path: "species.rabbit.breed_threshold", Min: 12, Max: 40, Default: 22, Integer: true},
			{Name: "rabbit_food_gain", Path: "species.rabbit.food_gain", Min: 4, Max: 20, Default: 10, Integer: true},
			{Name: "rabbit_move_cost", Path: "species.rabbit.move_cost", Min: 1, Max: 3, Default: 1, Integer: true},
			// Wolf
			{Name: "wolf_breed_chance", Path: "species.wolf.breed_chance", Min: 0.02, Max: 0.6, Default: 0.20},
			{Name: "wolf_breed_threshold", Path: "species.wolf.breed_threshold", Min: 20, Max: 60, Default: 35, Integer: true},
			{Name: "wolf_food_gain", Path: "species.wolf.food_gain", Min: 10, Max: 40, Default: 25, Integer: true},
			{Name: "wolf_move_cost", Path: "species.wolf.move_cost", Min: 1, Max: 4, Default: 2, Integer: true},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds and integer parameters are
// whole numbers.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Min(math.Max(v[i], spec.Min), spec.Max)
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	// Order must match Specs order
	r, w := &cfg.Species.Rabbit, &cfg.Species.Wolf
	r.BreedChance = clamped[0]
	r.BreedThreshold = int(clamped[1])
	r.FoodGain = int(clamped[2])
	r.MoveCost = int(clamped[3])
	w.BreedChance = clamped[4]
	w.BreedThreshold = int(clamped[5])
	w.FoodGain = int(clamped[6])
	w.MoveCost = int(clamped[7])
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	r, w := cfg.Species.Rabbit, cfg.Species.Wolf
	return []float64{
		r.BreedChance,
		float64(r.BreedThreshold),
		float64(r.FoodGain),
		float64(r.MoveCost),
		w.BreedChance,
		float64(w.BreedThreshold),
		float64(w.FoodGain),
		float64(w.MoveCost),
	}
}

// logRecord is one row of optimize_log.csv. Parameter columns follow
// Specs order.
type logRecord struct {
	Eval         int     `csv:"eval"`
	Fitness      float64 `csv:"fitness"`
	Quality      float64 `csv:"quality"`
	CoexistTicks float64 `csv:"coexist_ticks"`

	RabbitBreedChance    float64 `csv:"rabbit_breed_chance"`
	RabbitBreedThreshold float64 `csv:"rabbit_breed_threshold"`
	RabbitFoodGain       float64 `csv:"rabbit_food_gain"`
	RabbitMoveCost       float64 `csv:"rabbit_move_cost"`
	WolfBreedChance      float64 `csv:"wolf_breed_chance"`
	WolfBreedThreshold   float64 `csv:"wolf_breed_threshold"`
	WolfFoodGain         float64 `csv:"wolf_food_gain"`
	WolfMoveCost         float64 `csv:"wolf_move_cost"`
}

// newLogRecord builds a CSV row from clamped parameter values.
func newLogRecord(eval int, fitness, quality, coexist float64, v []float64) logRecord {
	return logRecord{
		Eval:                 eval,
		Fitness:              fitness,
		Quality:              quality,
		CoexistTicks:         coexist,
		RabbitBreedChance:    v[0],
		RabbitBreedThreshold: v[1],
		RabbitFoodGain:       v[2],
		RabbitMoveCost:       v[3],
		WolfBreedChance:      v[4],
		WolfBreedThreshold:   v[5],
		WolfFoodGain:         v[6],
		WolfMoveCost:         v[7],
	}
}
