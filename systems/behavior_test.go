package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/survivors/components"
)

func TestCriticalScenario(t *testing.T) {
	cfg := testConfig(t)
	env := testEnv(t, cfg, nil)
	a := newTestAgent(0, 500, 300, 12) // below the critical threshold of 15

	StepSurvivor(a, env)
	if !a.State.Critical {
		t.Fatal("not critical at energy 12")
	}
	if a.Motion.Speed != cfg.Derived.SpeedCritical {
		t.Errorf("speed = %v, want critical %v", a.Motion.Speed, cfg.Derived.SpeedCritical)
	}
	if a.Senses.SensoryRadius != 60 {
		t.Errorf("sensory radius shrank before the first step: %v", a.Senses.SensoryRadius)
	}

	env.Now = 0.25
	StepSurvivor(a, env)
	if a.Senses.SensoryRadius != 60 {
		t.Errorf("sensory radius shrank after 0.25s: %v", a.Senses.SensoryRadius)
	}

	env.Now = 0.5
	StepSurvivor(a, env)
	if want := 12.0 / 15 * 60; math.Abs(a.Senses.SensoryRadius-want) > 1e-9 {
		t.Errorf("sensory radius = %v, want %v", a.Senses.SensoryRadius, want)
	}

	// Recovery snaps back.
	a.Energy.Value = 30
	env.Now = 0.6
	StepSurvivor(a, env)
	if a.State.Critical || a.Senses.SensoryRadius != 60 || a.Motion.Speed != cfg.Survivor.Speed {
		t.Errorf("after recovery critical=%v radius=%v speed=%v", a.State.Critical, a.Senses.SensoryRadius, a.Motion.Speed)
	}
}

func TestSensoryRadiusFloor(t *testing.T) {
	cfg := testConfig(t)
	env := testEnv(t, cfg, nil)
	a := newTestAgent(0, 500, 300, 0.1)

	StepSurvivor(a, env)
	env.Now = 0.5
	StepSurvivor(a, env)
	if a.Senses.SensoryRadius != a.Senses.Radius {
		t.Errorf("sensory radius = %v, want floored at body radius %v", a.Senses.SensoryRadius, a.Senses.Radius)
	}
}

func TestEnergyDrainsToCritical(t *testing.T) {
	cfg := testConfig(t)
	env := testEnv(t, cfg, nil)
	a := newTestAgent(0, 500, 300, 60)

	const dt = 0.25
	for env.Now = 0; env.Now < 200 && !a.State.Critical; env.Now += dt {
		StepSurvivor(a, env)
	}
	if !a.State.Critical {
		t.Fatalf("never reached critical, energy %v", a.Energy.Value)
	}
	if a.Energy.Value > cfg.Derived.EnergyCritical {
		t.Errorf("critical at energy %v above threshold %v", a.Energy.Value, cfg.Derived.EnergyCritical)
	}
	if a.State.Stats.EnergyLost < 60-cfg.Derived.EnergyCritical {
		t.Errorf("EnergyLost = %v, want >= %v", a.State.Stats.EnergyLost, 60-cfg.Derived.EnergyCritical)
	}
}

func TestStarveImmobilizeFade(t *testing.T) {
	cfg := testConfig(t)
	env := testEnv(t, cfg, nil)
	a := newTestAgent(0, 500, 300, 0)

	if out := StepSurvivor(a, env); !out.Has(OutcomeStarved) {
		t.Errorf("outcome = %b, want starved", out)
	}
	if a.State.Mode != components.ModeImmobilized {
		t.Fatalf("mode = %v, want immobilized", a.State.Mode)
	}

	pos := *a.Pos
	env.Now = 2
	StepSurvivor(a, env)
	if *a.Pos != pos {
		t.Error("immobilized survivor moved")
	}

	env.Now = 5
	StepSurvivor(a, env)
	if a.State.Mode != components.ModeFading {
		t.Fatalf("mode = %v, want fading", a.State.Mode)
	}

	env.Now = 7.5
	if out := StepSurvivor(a, env); out.Has(OutcomeFaded) {
		t.Error("faded at half progress")
	}
	if math.Abs(a.State.FadeProgress-0.5) > 1e-9 {
		t.Errorf("fade progress = %v, want 0.5", a.State.FadeProgress)
	}

	env.Now = 10
	if out := StepSurvivor(a, env); !out.Has(OutcomeFaded) {
		t.Error("fade did not complete")
	}
	if a.State.FadeProgress != 1 {
		t.Errorf("fade progress = %v, want 1", a.State.FadeProgress)
	}
}

func TestRushReachesFood(t *testing.T) {
	cfg := testConfig(t)
	food := NewFood(cfg, testRng())
	food.Pos = Vec{520, 300}
	env := testEnv(t, cfg, food)

	a := newTestAgent(0, 440, 300, 30)
	a.State.Mode = components.ModeRush

	var out Outcome
	for i := 0; i < 20 && a.State.Mode == components.ModeRush; i++ {
		env.Now = float64(i) * 0.1
		out = StepSurvivor(a, env)
	}
	if a.State.Mode != components.ModeEating || !out.Has(OutcomeMeal) {
		t.Fatalf("mode = %v outcome = %b, want eating after a meal", a.State.Mode, out)
	}
	if a.State.Stats.Meals != 1 {
		t.Errorf("meals = %d, want 1", a.State.Stats.Meals)
	}
	if d := Distance(a.Vec(), food.Pos); d > food.ScentRadius/2 {
		t.Errorf("started eating %v from the food", d)
	}
}

func TestEatingUntilSatiated(t *testing.T) {
	cfg := testConfig(t)
	food := NewFood(cfg, testRng())
	food.Pos = Vec{500, 300}
	env := testEnv(t, cfg, food)

	a := newTestAgent(0, 500, 300, 59.5)
	a.State.Mode = components.ModeEating
	start := food.Quantity

	StepSurvivor(a, env) // arms the bonus timer
	if a.Energy.Value != 59.5 {
		t.Errorf("energy changed on the first step: %v", a.Energy.Value)
	}

	env.Now = 0.5
	out := StepSurvivor(a, env)
	if !out.Has(OutcomeSatiated) {
		t.Errorf("outcome = %b, want satiated", out)
	}
	if a.Energy.Value != 60 {
		t.Errorf("energy = %v, want 60", a.Energy.Value)
	}
	if food.Quantity != start-food.EnergyBonus() {
		t.Errorf("food quantity = %v, want %v", food.Quantity, start-food.EnergyBonus())
	}
	if a.State.Mode != components.ModeSearch || a.State.AbleToEat {
		t.Errorf("after satiation mode=%v ableToEat=%v", a.State.Mode, a.State.AbleToEat)
	}
	if a.State.Stats.EnergyRecovered != 0.5 {
		t.Errorf("EnergyRecovered = %v, want the clamped 0.5", a.State.Stats.EnergyRecovered)
	}
}

func TestFeedingSuppressed(t *testing.T) {
	cfg := testConfig(t)

	t.Run("food in cooldown", func(t *testing.T) {
		food := NewFood(cfg, testRng())
		food.InCooldown = true
		env := testEnv(t, cfg, food)
		a := newTestAgent(0, 500, 300, 30)
		a.State.Mode = components.ModeRush

		StepSurvivor(a, env)
		if a.State.Mode != components.ModeSearch || a.State.AbleToEat {
			t.Errorf("mode=%v ableToEat=%v, want suppressed", a.State.Mode, a.State.AbleToEat)
		}
	})

	t.Run("following pauses eating", func(t *testing.T) {
		food := NewFood(cfg, testRng())
		food.Pos = Vec{500, 300}
		env := testEnv(t, cfg, food)
		a := newTestAgent(0, 500, 300, 30)
		a.State.Mode = components.ModeEating
		a.State.Following = true

		StepSurvivor(a, env)
		env.Now = 1
		StepSurvivor(a, env)
		if a.Energy.Value != 30 || a.State.Mode != components.ModeEating {
			t.Errorf("energy=%v mode=%v, want paused eater", a.Energy.Value, a.State.Mode)
		}
	})
}

func TestFleeExpires(t *testing.T) {
	cfg := testConfig(t)
	env := testEnv(t, cfg, nil)
	a := newTestAgent(0, 500, 300, 30)
	a.State.Mode = components.ModeFlee
	a.State.Timers.Start(0, timerFlee)

	start := *a.Pos
	env.Now = 1
	StepSurvivor(a, env)
	if moved := a.Pos.X - start.X; math.Abs(moved-cfg.Derived.SpeedFlee*ModifiersFor(env.Climate, *a.Energy, *a.Traits).Speed) > 1e-9 {
		t.Errorf("flee step moved %v", moved)
	}

	env.Now = 2 // FleeDuration is 2
	StepSurvivor(a, env)
	if a.State.Mode != components.ModeSearch {
		t.Errorf("mode = %v, want search after the flee duration", a.State.Mode)
	}
}

func TestWrap(t *testing.T) {
	cfg := testConfig(t)
	env := testEnv(t, cfg, nil)
	w, h := cfg.Derived.WorldW, cfg.Derived.WorldH

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"left", -4, 100, w + 3, 100},
		{"right", w + 4, 100, -3, 100},
		{"top", 100, -4, 100, h + 3},
		{"bottom", 100, h + 4, 100, -3},
		{"touching edge stays", -2, 100, -2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAgent(0, tt.x, tt.y, 30)
			a.Motion.DX, a.Motion.DY = 0, 0
			StepSurvivor(a, env)
			if a.Pos.X != tt.wantX || a.Pos.Y != tt.wantY {
				t.Errorf("pos = (%v, %v), want (%v, %v)", a.Pos.X, a.Pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDirectionChanges(t *testing.T) {
	cfg := testConfig(t)
	env := testEnv(t, cfg, nil)
	a := newTestAgent(0, 500, 300, 50)
	a.State.NextTurn = 2

	StepSurvivor(a, env)
	env.Now = 1.9
	StepSurvivor(a, env)
	if a.Motion.DX != 1 || a.Motion.DY != 0 {
		t.Errorf("heading changed early: (%v, %v)", a.Motion.DX, a.Motion.DY)
	}

	env.Now = 2
	StepSurvivor(a, env)
	if a.Motion.DX == 1 && a.Motion.DY == 0 {
		t.Error("heading did not change")
	}
	if l := math.Hypot(a.Motion.DX, a.Motion.DY); math.Abs(l-1) > 1e-9 {
		t.Errorf("heading length %v, want unit", l)
	}
	if a.State.NextTurn < cfg.Survivor.DirectionMin || a.State.NextTurn > cfg.Survivor.DirectionMax {
		t.Errorf("next turn %v outside [%v, %v]", a.State.NextTurn, cfg.Survivor.DirectionMin, cfg.Survivor.DirectionMax)
	}
}
