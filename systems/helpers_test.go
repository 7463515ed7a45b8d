package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/weather"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

// neutralClimate weights nothing for a mid-resilience Survivor at full energy.
func neutralClimate() Climate {
	return Climate{
		Penalties:  weather.Neutral(),
		Weighting:  weather.DefaultWeighting(),
		Resilience: weather.ResilienceFactor{Min: 1, Max: 10},
	}
}

func newTestAgent(id uint32, x, y, energy float64) Agent {
	return Agent{
		Identity: &components.Identity{ID: id},
		Pos:      &components.Position{X: x, Y: y},
		Motion:   &components.Motion{DX: 1, Speed: 4},
		Energy:   &components.Energy{Value: energy, Max: 60},
		Senses:   &components.Senses{Radius: 3, SensoryRadius: 60},
		Traits:   &components.Traits{Audacity: 5, Resilience: 5.5, FleeDuration: 2},
		State:    &components.State{Mode: components.ModeSearch, AbleToEat: true, NextTurn: 3},
	}
}

func testEnv(t *testing.T, cfg *config.Config, food *Food) *Env {
	t.Helper()
	return &Env{
		Cfg:     cfg,
		Food:    food,
		Climate: neutralClimate(),
		Bounds:  WorldBounds(cfg.Derived.WorldW, cfg.Derived.WorldH),
		Rng:     testRng(),
	}
}

func testPass(t *testing.T, cfg *config.Config, agents []Agent) *InteractionPass {
	t.Helper()
	p := NewInteractionPass(cfg)
	p.Index(agents)
	return p
}
