package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/weather"
)

func TestModifiersNeutral(t *testing.T) {
	c := neutralClimate()
	m := ModifiersFor(c, components.Energy{Value: 60, Max: 60}, components.Traits{Resilience: 5.5})
	if math.Abs(m.Speed-1) > 1e-9 || math.Abs(m.EnergyLoss-1) > 1e-9 {
		t.Errorf("modifiers = %+v, want 1/1 for a full, average survivor in a temperate climate", m)
	}
}

func TestModifiersWorsenWithConditions(t *testing.T) {
	c := neutralClimate()
	c.Penalties = weather.Penalties{Speed: 0.5, EnergyLoss: 1.4, FoodQuantity: 1, FoodDecay: 1, FoodRespawn: 1, RageCooldown: 1}

	healthy := ModifiersFor(c, components.Energy{Value: 60, Max: 60}, components.Traits{Resilience: 10})
	weak := ModifiersFor(c, components.Energy{Value: 10, Max: 60}, components.Traits{Resilience: 1})

	if weak.Speed >= healthy.Speed {
		t.Errorf("weak speed %v >= healthy speed %v", weak.Speed, healthy.Speed)
	}
	if weak.EnergyLoss <= healthy.EnergyLoss {
		t.Errorf("weak loss %v <= healthy loss %v", weak.EnergyLoss, healthy.EnergyLoss)
	}
	if weak.Speed < 0.1 {
		t.Errorf("speed %v below the weighting floor", weak.Speed)
	}
}

func TestWorldPenalties(t *testing.T) {
	c := neutralClimate()
	c.Penalties = weather.Penalties{Speed: 0.7, EnergyLoss: 1.6, FoodQuantity: 0.25, FoodDecay: 3.14, FoodRespawn: 2.2, RageCooldown: 0.25}

	if got := WorldPenalties(c); got != c.Penalties {
		t.Errorf("without temperature got %+v, want base %+v", got, c.Penalties)
	}

	// Hotter than the hot mean: less food, faster decay, slower respawn.
	c.Temperature = &weather.TemperatureFactor{Current: 65, Mean: 55}
	got := WorldPenalties(c)
	if got.FoodQuantity >= 0.25 || got.FoodDecay <= 3.14 || got.FoodRespawn <= 2.2 {
		t.Errorf("harsh temperature penalties = %+v", got)
	}
	if got.Speed != 0.7 || got.EnergyLoss != 1.6 {
		t.Errorf("survivor coefficients changed: %+v", got)
	}
}

func TestEnergyStats(t *testing.T) {
	e := components.Energy{Value: 58, Max: 60}
	var st components.State

	if got := gainEnergy(&e, &st, 5); got != 2 {
		t.Errorf("gain applied %v, want 2", got)
	}
	loseEnergy(&e, &st, 70)
	if e.Value != 0 || st.Stats.EnergyLost != 60 || st.Stats.EnergyRecovered != 2 {
		t.Errorf("energy=%v lost=%v recovered=%v", e.Value, st.Stats.EnergyLost, st.Stats.EnergyRecovered)
	}
}
