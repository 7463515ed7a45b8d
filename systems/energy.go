package systems

import (
	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/weather"
)

// Climate is the weather input every Survivor step reads.
type Climate struct {
	Penalties   weather.Penalties
	Temperature *weather.TemperatureFactor
	Weighting   weather.Weighting
	Resilience  weather.ResilienceFactor // Min and Max; Value is per Survivor
}

// Modifiers are one Survivor's climate multipliers for this tick.
type Modifiers struct {
	Speed      float64
	EnergyLoss float64
}

// ModifiersFor weights the climate penalties by a Survivor's live energy,
// the temperature and its resilience. Speed shrinks as conditions worsen;
// energy loss grows.
func ModifiersFor(c Climate, e components.Energy, tr components.Traits) Modifiers {
	res := c.Resilience
	res.Value = tr.Resilience
	f := weather.Factors{
		Energy:      &weather.EnergyFactor{Value: e.Value, Max: e.Max},
		Temperature: c.Temperature,
		Resilience:  &res,
	}
	speed := c.Weighting.Weight(c.Penalties.Speed, f)
	f.Inverse = true
	loss := c.Weighting.Weight(c.Penalties.EnergyLoss, f)
	return Modifiers{Speed: speed, EnergyLoss: loss}
}

// WorldPenalties weights the climate coefficients that act on Food and
// Danger, which only feel the temperature. Quantity and decay speed shrink
// with a friendlier temperature; respawn delay and rage decay period grow
// with a harsher one.
func WorldPenalties(c Climate) weather.Penalties {
	w := c.Weighting
	normal := weather.Factors{Temperature: c.Temperature}
	inverse := weather.Factors{Temperature: c.Temperature, Inverse: true}

	p := c.Penalties
	p.FoodQuantity = w.Weight(p.FoodQuantity, normal)
	p.FoodDecay = w.Weight(p.FoodDecay, inverse)
	p.FoodRespawn = w.Weight(p.FoodRespawn, inverse)
	p.RageCooldown = w.Weight(p.RageCooldown, normal)
	return p
}

// loseEnergy takes amount from a Survivor and records it in its stats.
func loseEnergy(e *components.Energy, st *components.State, amount float64) {
	applied := e.Add(-amount)
	st.Stats.EnergyLost -= applied
}

// gainEnergy gives amount to a Survivor and records it in its stats.
func gainEnergy(e *components.Energy, st *components.State, amount float64) float64 {
	applied := e.Add(amount)
	st.Stats.EnergyRecovered += applied
	return applied
}
