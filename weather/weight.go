package weather

import (
	"math"

	"github.com/pthm-cable/survivors/config"
)

// EnergyFactor feeds an agent's live energy into a weighting.
type EnergyFactor struct {
	Value, Max float64
}

// TemperatureFactor feeds the current temperature and its climate mean.
type TemperatureFactor struct {
	Current, Mean float64
}

// ResilienceFactor feeds a resilience trait and its legal range.
type ResilienceFactor struct {
	Value, Min, Max float64
}

// Factors selects which optional factors a weighting applies.
// Nil factors are neutral. Inverse is for multipliers that should grow as
// conditions worsen (energy loss, respawn delay).
type Factors struct {
	Energy      *EnergyFactor
	Temperature *TemperatureFactor
	Resilience  *ResilienceFactor
	Inverse     bool
}

// Weighting holds the constants of the penalty weighting function.
type Weighting struct {
	Floor           float64 // result lower bound
	EnergyFloor     float64 // energy factor at zero energy
	PerDegree       float64 // fractional change per degree of deviation
	TemperatureCap  float64 // max absolute temperature adjustment
	ResilienceSwing float64 // max absolute resilience adjustment
	Neutral         float64 // reference temperature
}

// DefaultWeighting returns the stock constants.
func DefaultWeighting() Weighting {
	return Weighting{
		Floor:           0.1,
		EnergyFloor:     0.85,
		PerDegree:       0.01,
		TemperatureCap:  0.5,
		ResilienceSwing: 0.10,
		Neutral:         15,
	}
}

// WeightingFromConfig builds a Weighting from the weather config. The floor
// is raised to config.MinWeightFloor when set lower.
func WeightingFromConfig(cfg config.WeatherConfig) Weighting {
	w := Weighting{
		Floor:           max(cfg.Weighting.Floor, config.MinWeightFloor),
		EnergyFloor:     cfg.Weighting.EnergyFloor,
		PerDegree:       cfg.Weighting.PerDegree,
		TemperatureCap:  cfg.Weighting.TemperatureCap,
		ResilienceSwing: cfg.Weighting.ResilienceSwing,
		Neutral:         cfg.Neutral,
	}
	if w.EnergyFloor == 0 && w.PerDegree == 0 && w.TemperatureCap == 0 && w.ResilienceSwing == 0 {
		d := DefaultWeighting()
		d.Neutral = cfg.Neutral
		return d
	}
	return w
}

// Weight multiplies base by every factor set in f and floors the result.
// With no factors set it returns base (floored).
func (w Weighting) Weight(base float64, f Factors) float64 {
	result := base

	if f.Energy != nil {
		result *= w.energyFactor(*f.Energy, f.Inverse)
	}
	if f.Temperature != nil {
		result *= w.temperatureFactor(*f.Temperature, f.Inverse)
	}
	if f.Resilience != nil {
		result *= w.resilienceFactor(*f.Resilience, f.Inverse)
	}

	return math.Max(result, w.Floor)
}

// Weight applies DefaultWeighting.
func Weight(base float64, f Factors) float64 {
	return DefaultWeighting().Weight(base, f)
}

func (w Weighting) energyFactor(e EnergyFactor, inverse bool) float64 {
	ratio := 0.0
	if e.Max > 0 {
		ratio = clamp(e.Value/e.Max, 0, 1)
	}
	factor := w.EnergyFloor + (1-w.EnergyFloor)*ratio
	if inverse {
		return 2 - factor
	}
	return factor
}

// temperatureFactor penalises deviation from the climate mean, unless the
// current temperature is nearer the neutral reference than the mean is, in
// which case the deviation is a relief.
func (w Weighting) temperatureFactor(t TemperatureFactor, inverse bool) float64 {
	dev := math.Min(math.Abs(t.Current-t.Mean)*w.PerDegree, w.TemperatureCap)

	factor := 1 - dev
	if math.Abs(t.Current-w.Neutral) < math.Abs(t.Mean-w.Neutral) {
		factor = 1 + dev
	}
	if inverse {
		return 2 - factor
	}
	return factor
}

func (w Weighting) resilienceFactor(r ResilienceFactor, inverse bool) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 1
	}
	norm := (clamp(r.Value, r.Min, r.Max) - r.Min) / span
	adj := (norm*2 - 1) * w.ResilienceSwing
	if inverse {
		return 1 - adj
	}
	return 1 + adj
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
