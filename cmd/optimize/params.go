// Package main provides CMA-ES optimization for survivor game parameters.
package main

import (
	"github.com/pthm-cable/survivors/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Survivor metabolism
			{Name: "loss_normal", Path: "survivor.energy_loss_normal", Min: 0.2, Max: 1.0, Default: 0.5},
			{Name: "loss_follow", Path: "survivor.energy_loss_follow", Min: 0.4, Max: 2.0, Default: 1.0},
			{Name: "loss_danger", Path: "survivor.energy_loss_danger", Min: 0.5, Max: 3.0, Default: 1.5},
			{Name: "flee_bonus", Path: "survivor.speed_flee_bonus", Min: 0.5, Max: 4.0, Default: 2.0},
			// Danger
			{Name: "danger_damage", Path: "danger.damage", Min: 0.2, Max: 3.0, Default: 1.0},
			{Name: "rotation_max", Path: "danger.rotation_speed_max", Min: 5, Max: 60, Default: 30},
			{Name: "attack_cooldown", Path: "danger.attack_cooldown", Min: 0.5, Max: 5.0, Default: 2.0},
			{Name: "rage_cooldown", Path: "danger.rage_cooldown", Min: 0.5, Max: 5.0, Default: 2.0},
			// Food
			{Name: "quantity_min", Path: "food.quantity_min", Min: 50, Max: 400, Default: 250},
			{Name: "quantity_max", Path: "food.quantity_max", Min: 300, Max: 1000, Default: 500},
			{Name: "energy_bonus", Path: "food.energy_bonus", Min: 0.3, Max: 3.0, Default: 1.0},
			{Name: "max_eaters", Path: "food.max_eaters", Min: 2, Max: 30, Default: 10},
			{Name: "respawn_time", Path: "food.time_to_respawn", Min: 1.0, Max: 15.0, Default: 5.0},
			{Name: "decay_amount", Path: "food.decay_amount", Min: 0.2, Max: 3.0, Default: 1.0},
			// Weather
			{Name: "resilience_swing", Path: "weather.weighting.resilience_swing", Min: 0, Max: 0.3, Default: 0.1},
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

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct and refreshes
// the derived values. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	i := 0
	next := func() float64 {
		v := c[i]
		i++
		return v
	}

	cfg.Survivor.EnergyLossNormal = next()
	cfg.Survivor.EnergyLossFollow = next()
	cfg.Survivor.EnergyLossDanger = next()
	cfg.Survivor.SpeedFleeBonus = next()

	cfg.Danger.Damage = next()
	cfg.Danger.RotationSpeedMax = next()
	cfg.Danger.AttackCooldown = next()
	cfg.Danger.RageCooldown = next()

	cfg.Food.QuantityMin = next()
	cfg.Food.QuantityMax = next()
	cfg.Food.EnergyBonus = next()
	cfg.Food.MaxEaters = int(next() + 0.5)
	cfg.Food.TimeToRespawn = next()
	cfg.Food.DecayAmount = next()

	cfg.Weather.Weighting.ResilienceSwing = next()

	// The two quantity bounds are searched independently.
	if cfg.Food.QuantityMin > cfg.Food.QuantityMax {
		cfg.Food.QuantityMin, cfg.Food.QuantityMax = cfg.Food.QuantityMax, cfg.Food.QuantityMin
	}
	cfg.ComputeDerived()
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Survivor.EnergyLossNormal,
		cfg.Survivor.EnergyLossFollow,
		cfg.Survivor.EnergyLossDanger,
		cfg.Survivor.SpeedFleeBonus,
		cfg.Danger.Damage,
		cfg.Danger.RotationSpeedMax,
		cfg.Danger.AttackCooldown,
		cfg.Danger.RageCooldown,
		cfg.Food.QuantityMin,
		cfg.Food.QuantityMax,
		cfg.Food.EnergyBonus,
		float64(cfg.Food.MaxEaters),
		cfg.Food.TimeToRespawn,
		cfg.Food.DecayAmount,
		cfg.Weather.Weighting.ResilienceSwing,
	}
}
