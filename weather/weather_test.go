package weather

import (
	"math/rand/v2"
	"testing"

	"github.com/pthm-cable/survivors/config"
)

func testWeather(t *testing.T) *Weather {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	w, err := New(cfg.Weather, rand.NewPCG(1, 2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestClimateCycleOrder(t *testing.T) {
	w := testWeather(t)

	want := []Climate{Temperate, Cold, Temperate, Hot, Temperate}
	got := []Climate{w.Climate()}

	now := 0.0
	const dt = 0.05
	for len(got) < len(want) && now < 1000 {
		if w.Update(now) {
			got = append(got, w.Climate())
		}
		now += dt
	}

	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("climate[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if w.Cycles() != 1 {
		t.Errorf("cycles = %d, want 1", w.Cycles())
	}
}

func TestDwellDuration(t *testing.T) {
	w := testWeather(t)
	w.Update(0)
	if w.Update(29.9) {
		t.Error("temperate ended before 30s")
	}
	if !w.Update(30) {
		t.Error("temperate did not end at 30s")
	}
	if w.Climate() != Cold {
		t.Errorf("climate = %v, want cold", w.Climate())
	}
}

func TestTemperatureFollowsClimate(t *testing.T) {
	w := testWeather(t)
	if w.Temperature() != 15 {
		t.Errorf("initial temperature = %v, want temperate mean 15", w.Temperature())
	}

	// Move into the cold climate and sample for a while.
	w.Update(0)
	w.Update(30)
	var sum float64
	n := 0
	for now := 30.0; now < 49; now += 0.25 {
		w.Update(now)
		sum += w.Temperature()
		n++
	}
	mean := sum / float64(n)
	if mean > -10 || mean < -30 {
		t.Errorf("mean sampled cold temperature = %v, want near -20", mean)
	}
}

func TestPenaltiesPerClimate(t *testing.T) {
	w := testWeather(t)
	if p := w.Penalties(); p != Neutral() {
		t.Errorf("temperate penalties = %+v, want neutral", p)
	}

	cold := w.Profile(Cold).Penalties
	if cold.Speed != 0.5 || cold.EnergyLoss != 1.4 || cold.FoodRespawn != 1.8 {
		t.Errorf("cold penalties = %+v", cold)
	}
	if cold.RageCooldown != 1 {
		t.Errorf("cold rage cooldown = %v, want 1", cold.RageCooldown)
	}
	hot := w.Profile(Hot).Penalties
	if hot.FoodDecay != 3.14 || hot.RageCooldown != 0.25 {
		t.Errorf("hot penalties = %+v", hot)
	}
}

func TestBackgroundFade(t *testing.T) {
	w := testWeather(t)
	start := w.Background()
	cold := w.Profile(Cold).Color

	w.Update(0)
	w.Update(30) // climate change starts the fade
	w.Update(32.5)
	mid := w.Background()
	if mid == start || mid == cold {
		t.Errorf("background mid-fade = %+v, want between %+v and %+v", mid, start, cold)
	}
	if !w.State().Fading {
		t.Error("expected fading state mid-fade")
	}

	w.Update(35)
	if got := w.Background(); got != cold {
		t.Errorf("background after fade = %+v, want %+v", got, cold)
	}
	if w.State().Fading {
		t.Error("fade did not finish")
	}
}

func TestParseClimate(t *testing.T) {
	if c, err := ParseClimate(" HOT "); err != nil || c != Hot {
		t.Errorf("ParseClimate(HOT) = %v, %v", c, err)
	}
	if _, err := ParseClimate("monsoon"); err == nil {
		t.Error("expected error for unknown climate")
	}
}
