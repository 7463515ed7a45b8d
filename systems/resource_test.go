package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/survivors/weather"
)

func testFood(t *testing.T) *Food {
	t.Helper()
	f := NewFood(testConfig(t), testRng())
	if err := f.Relocate(Vec{640, 360}, 1); err != nil {
		t.Fatalf("Relocate: %v", err)
	}
	return f
}

func TestFoodRespawnFarFromDanger(t *testing.T) {
	f := testFood(t)
	danger := Vec{640, 360}
	minDist := f.world.Width() / 4

	for i := 0; i < 100; i++ {
		if err := f.Relocate(danger, 1); err != nil {
			t.Fatalf("Relocate #%d: %v", i, err)
		}
		if d := Distance(f.Pos, danger); d < minDist {
			t.Errorf("respawn %d at %v, distance %v < %v", i, f.Pos, d, minDist)
		}
		if f.Quantity < 1 || f.Quantity > f.QuantityMax() {
			t.Errorf("respawn quantity %v out of [1, %v]", f.Quantity, f.QuantityMax())
		}
	}
}

func TestFoodSizesMonotonic(t *testing.T) {
	f := testFood(t)
	cfg := testConfig(t)

	prevEdge, prevScent := f.Edge, f.ScentRadius
	for f.Quantity > 0 {
		f.Consume(7)
		if f.Edge > prevEdge || f.ScentRadius > prevScent {
			t.Fatalf("sizes grew while consuming: edge %v>%v scent %v>%v", f.Edge, prevEdge, f.ScentRadius, prevScent)
		}
		if f.Edge < cfg.Food.EdgeMin || f.Edge > cfg.Food.EdgeMax {
			t.Errorf("edge %v out of range", f.Edge)
		}
		if f.ScentRadius < cfg.Derived.ScentMin || f.ScentRadius > cfg.Derived.ScentMax {
			t.Errorf("scent %v out of range", f.ScentRadius)
		}
		prevEdge, prevScent = f.Edge, f.ScentRadius
	}
	if f.Quantity != 0 {
		t.Errorf("quantity = %v, want clamped at 0", f.Quantity)
	}
	if taken := f.Consume(5); taken != 0 {
		t.Errorf("Consume on empty food took %v", taken)
	}
}

func TestFoodDecay(t *testing.T) {
	f := testFood(t)
	start := f.Quantity

	f.Update(0, weather.Neutral(), Vec{})
	f.Update(1, weather.Neutral(), Vec{})
	if got, want := f.Quantity, start-1; math.Abs(got-want) > 1e-9 {
		t.Errorf("after one decay quantity = %v, want %v", got, want)
	}

	hot := weather.Neutral()
	hot.FoodDecay = 3
	f.Update(2, hot, Vec{})
	if got, want := f.Quantity, start-4; math.Abs(got-want) > 1e-9 {
		t.Errorf("after weighted decay quantity = %v, want %v", got, want)
	}
}

func TestFoodDepletionAndRespawn(t *testing.T) {
	f := testFood(t)
	p := weather.Neutral()
	danger := Vec{640, 360}

	f.Full = true
	f.Consume(f.Quantity)
	ev, err := f.Update(10, p, danger)
	if err != nil || ev != FoodDepleted {
		t.Fatalf("Update = %v, %v; want depleted", ev, err)
	}
	if !f.InCooldown || f.Full {
		t.Errorf("after depletion InCooldown=%v Full=%v", f.InCooldown, f.Full)
	}

	if ev, _ := f.Update(14.9, p, danger); ev != FoodNone || !f.InCooldown {
		t.Errorf("respawned early: event %v", ev)
	}

	ev, err = f.Update(15, p, danger)
	if err != nil || ev != FoodRespawned {
		t.Fatalf("Update = %v, %v; want respawned", ev, err)
	}
	if f.InCooldown || f.Generation != 1 || f.Quantity <= 0 {
		t.Errorf("after respawn InCooldown=%v Generation=%d Quantity=%v", f.InCooldown, f.Generation, f.Quantity)
	}
}

func TestFoodRespawnDelayWeighted(t *testing.T) {
	f := testFood(t)
	p := weather.Neutral()
	p.FoodRespawn = 2

	f.Consume(f.Quantity)
	f.Update(0, p, Vec{640, 360})
	if ev, _ := f.Update(9.5, p, Vec{640, 360}); ev != FoodNone {
		t.Errorf("respawned before the weighted delay: %v", ev)
	}
	if ev, _ := f.Update(10, p, Vec{640, 360}); ev != FoodRespawned {
		t.Errorf("event = %v, want respawned after 10s", ev)
	}
}
