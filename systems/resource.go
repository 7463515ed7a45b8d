package systems

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/timers"
	"github.com/pthm-cable/survivors/weather"
)

// FoodEvent reports a lifecycle transition from Food.Update.
type FoodEvent uint8

const (
	FoodNone FoodEvent = iota
	FoodDepleted
	FoodRespawned
)

// String returns the event name.
func (e FoodEvent) String() string {
	switch e {
	case FoodDepleted:
		return "depleted"
	case FoodRespawned:
		return "respawned"
	default:
		return "none"
	}
}

const (
	timerDecay   = "decay"
	timerRespawn = "respawn"
)

// Food is the single shared resource. Edge and ScentRadius are derived from
// Quantity and never set independently. Positions are centres.
type Food struct {
	Pos         Vec
	Quantity    float64
	Edge        float64
	ScentRadius float64

	Full       bool // capacity reached as of the last regulation
	InCooldown bool // depleted, waiting to respawn
	Generation int  // bumped on every respawn

	cfg          config.FoodConfig
	scentMin     float64
	scentMax     float64
	world        Bounds
	attempts     int
	respawnDelay float64
	rng          *rand.Rand
	timers       timers.Registry
}

// NewFood builds a Food with full quantity. Call Relocate before use.
func NewFood(cfg *config.Config, rng *rand.Rand) *Food {
	f := &Food{
		cfg:      cfg.Food,
		scentMin: cfg.Derived.ScentMin,
		scentMax: cfg.Derived.ScentMax,
		world:    WorldBounds(cfg.Derived.WorldW, cfg.Derived.WorldH),
		attempts: cfg.World.PlacementAttempts,
		rng:      rng,
	}
	f.Quantity = f.cfg.QuantityMax
	f.resize()
	return f
}

// MinDangerDistance is the closest a respawn may land to Danger.
func (f *Food) MinDangerDistance() float64 {
	return f.world.Width() * f.cfg.DangerDistRatio
}

// Update runs decay and the depletion/respawn cycle. p holds the climate
// coefficients already passed through the weighting. An error means the
// respawn found no position; the Food stays in cooldown and retries on the
// next call.
func (f *Food) Update(now float64, p weather.Penalties, danger Vec) (FoodEvent, error) {
	if f.InCooldown {
		elapsed, _ := f.timers.Elapsed(now, timerRespawn)
		if elapsed < f.respawnDelay {
			return FoodNone, nil
		}
		if err := f.Relocate(danger, p.FoodQuantity); err != nil {
			return FoodNone, err
		}
		f.Generation++
		return FoodRespawned, nil
	}

	if f.timers.Check(now, timerDecay, f.cfg.DecayFrequency) && f.Quantity > 0 {
		f.Quantity = max(f.Quantity-f.cfg.DecayAmount*p.FoodDecay, 0)
		f.resize()
	}

	if f.Quantity <= 0 {
		f.Quantity = 0
		f.InCooldown = true
		f.Full = false
		f.respawnDelay = f.cfg.TimeToRespawn * p.FoodRespawn
		f.timers.Start(now, timerRespawn)
		return FoodDepleted, nil
	}
	return FoodNone, nil
}

// Relocate moves the Food to a random position far enough from danger and
// refills it. quantityScale multiplies the drawn quantity.
func (f *Food) Relocate(danger Vec, quantityScale float64) error {
	margin := f.cfg.EdgeMax + f.scentMax*2
	area := f.world.Inset(margin)
	if area.Empty() {
		area = f.world
	}

	pos, err := Place(f.rng, area, FarFrom(danger, f.MinDangerDistance()), f.attempts)
	if err != nil {
		return fmt.Errorf("food respawn: %w", err)
	}

	qty := f.cfg.QuantityMax
	if f.cfg.QuantityMax > f.cfg.QuantityMin {
		qty = distuv.Uniform{Min: f.cfg.QuantityMin, Max: f.cfg.QuantityMax, Src: f.rng}.Rand()
	}
	if quantityScale > 0 {
		qty *= quantityScale
	}

	f.Pos = pos
	f.Quantity = clampFloat(qty, 1, f.cfg.QuantityMax)
	f.Full = false
	f.InCooldown = false
	f.timers.Delete(timerDecay)
	f.timers.Delete(timerRespawn)
	f.resize()
	return nil
}

// Consume removes up to amount from the quantity and returns what was taken.
func (f *Food) Consume(amount float64) float64 {
	taken := min(max(amount, 0), f.Quantity)
	f.Quantity -= taken
	f.resize()
	return taken
}

// EnergyBonus is the energy one bite gives.
func (f *Food) EnergyBonus() float64 { return f.cfg.EnergyBonus }

// QuantityMax is the largest possible quantity.
func (f *Food) QuantityMax() float64 { return f.cfg.QuantityMax }

// EdgeMax is the largest possible edge.
func (f *Food) EdgeMax() float64 { return f.cfg.EdgeMax }

// ScentMax is the largest possible scent radius.
func (f *Food) ScentMax() float64 { return f.scentMax }

// resize derives Edge and ScentRadius from the quantity ratio.
func (f *Food) resize() {
	ratio := 0.0
	if f.cfg.QuantityMax > 0 && f.Quantity > 0 {
		ratio = clampFloat(f.Quantity/f.cfg.QuantityMax, 0, 1)
	}
	f.Edge = lerp(f.cfg.EdgeMin, f.cfg.EdgeMax, ratio)
	f.ScentRadius = lerp(f.scentMin, f.scentMax, ratio)
}
