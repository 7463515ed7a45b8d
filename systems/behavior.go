package systems

import (
	"math"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
)

// Survivor timer names.
const (
	timerImmobilization = "immobilization"
	timerFade           = "fade"
	timerSensoryRadius  = "sensory_radius"
	timerEnergyLoss     = "energy_loss"
	timerDirection      = "direction"
	timerDejaVuFlee     = "deja_vu_flee"
	timerSpatialMemory  = "spatial_memory"
	timerEnergyBonus    = "energy_bonus"
	timerFlee           = "flee"
	timerEatingCooldown = "eating_cooldown"
)

// Agent bundles the components of one Survivor. The pointers come from an
// ECS query and stay valid until the world changes structurally.
type Agent struct {
	Entity   ecs.Entity
	Identity *components.Identity
	Pos      *components.Position
	Motion   *components.Motion
	Energy   *components.Energy
	Senses   *components.Senses
	Traits   *components.Traits
	State    *components.State
}

// Vec returns the agent position.
func (a Agent) Vec() Vec { return Vec{a.Pos.X, a.Pos.Y} }

// Env is the shared world a Survivor step reads.
type Env struct {
	Now     float64
	Cfg     *config.Config
	Food    *Food
	Climate Climate
	Bounds  Bounds
	Rng     *rand.Rand
}

// Outcome is a set of things that happened to a Survivor during a step.
type Outcome uint8

const (
	OutcomeMeal     Outcome = 1 << iota // reached the food and started eating
	OutcomeSatiated                     // stopped eating at full energy
	OutcomeStarved                      // ran out of energy
	OutcomeFaded                        // fade complete; remove from the world
)

// Has reports whether o contains flag.
func (o Outcome) Has(flag Outcome) bool { return o&flag != 0 }

// SuppressAppetite stops a Survivor from rushing or eating and starts its
// eating cooldown. Used on satiation and on every forced disengagement.
func SuppressAppetite(st *components.State, now float64) {
	if st.Engaged() {
		st.Mode = components.ModeSearch
	}
	st.AbleToEat = false
	st.Timers.Start(now, timerEatingCooldown)
}

// RandomHeading points m in a uniformly random direction.
func RandomHeading(m *components.Motion, rng *rand.Rand) {
	angle := rng.Float64() * 2 * math.Pi
	m.DX = math.Cos(angle)
	m.DY = math.Sin(angle)
}

// NextTurnInterval draws the time until the next random heading change.
func NextTurnInterval(cfg config.SurvivorConfig, rng *rand.Rand) float64 {
	if cfg.DirectionMax <= cfg.DirectionMin {
		return cfg.DirectionMin
	}
	return distuv.Uniform{Min: cfg.DirectionMin, Max: cfg.DirectionMax, Src: rng}.Rand()
}

// StepSurvivor advances one Survivor's state machine by one tick. Clauses
// run in priority order and several end the step early.
func StepSurvivor(a Agent, env *Env) Outcome {
	st := a.State
	now := env.Now
	cfg := &env.Cfg.Survivor
	derived := &env.Cfg.Derived

	// Immobilize, then fade, then signal removal.
	if out, done := terminal(a, env); done {
		return out
	}

	updateCritical(a, now, cfg, derived)
	mods := ModifiersFor(env.Climate, *a.Energy, *a.Traits)

	switch st.Mode {
	case components.ModeSearch:
		move(a, a.Motion.Speed*mods.Speed)
		lossPeriodically(a, now, cfg, pick(st.Following, cfg.EnergyLossFollow, cfg.EnergyLossNormal)*mods.EnergyLoss)
		if st.Timers.Check(now, timerDirection, st.NextTurn) {
			RandomHeading(a.Motion, env.Rng)
			st.NextTurn = NextTurnInterval(*cfg, env.Rng)
		}

	case components.ModeDejaVuFlee:
		move(a, a.Motion.Speed*mods.Speed)
		lossPeriodically(a, now, cfg, cfg.EnergyLossNormal*mods.EnergyLoss)
		if st.Timers.Check(now, timerDejaVuFlee, cfg.DejaVuFleeDuration) {
			st.Mode = components.ModeSearch
		}
	}

	if st.DejaVu && st.Timers.Check(now, timerSpatialMemory, st.MemoryDuration) {
		st.DejaVu = false
	}

	if st.Engaged() && !st.Following && st.AbleToEat {
		return feed(a, env, mods)
	}

	if st.Mode == components.ModeFlee {
		speed := derived.SpeedFlee
		if st.Critical {
			speed = derived.SpeedFleeCritical
		}
		move(a, speed*mods.Speed)
		lossPeriodically(a, now, cfg, cfg.EnergyLossDanger*mods.EnergyLoss)
		if st.Timers.Check(now, timerFlee, a.Traits.FleeDuration) {
			st.Mode = components.ModeSearch
		}
	}

	wrap(a, env.Bounds)
	return 0
}

// terminal runs the immobilize/fade sequence. done is true when the
// Survivor is no longer mobile and the step must stop.
func terminal(a Agent, env *Env) (out Outcome, done bool) {
	st := a.State
	now := env.Now
	cfg := &env.Cfg.Survivor

	if st.Mobile() && a.Energy.Value <= 0 {
		st.Mode = components.ModeImmobilized
		st.Following = false
		st.Timers.Start(now, timerImmobilization)
		out |= OutcomeStarved
	}

	if st.Mode == components.ModeImmobilized {
		if elapsed, _ := st.Timers.Elapsed(now, timerImmobilization); elapsed >= cfg.ImmobilizeDuration {
			st.Mode = components.ModeFading
			st.Timers.Start(now, timerFade)
		}
	}

	if st.Mode == components.ModeFading {
		progress := 1.0
		if cfg.FadeDuration > 0 {
			elapsed, _ := st.Timers.Elapsed(now, timerFade)
			progress = elapsed / cfg.FadeDuration
		}
		st.FadeProgress = min(progress, 1)
		if progress >= 1-cfg.FadeTolerance {
			out |= OutcomeFaded
		}
	}

	return out, !st.Mobile()
}

// updateCritical sets speed and sensory radius from the energy level. The
// radius shrinks one gated step at a time and snaps back on recovery.
func updateCritical(a Agent, now float64, cfg *config.SurvivorConfig, derived *config.DerivedConfig) {
	st := a.State
	if a.Energy.Value <= derived.EnergyCritical {
		st.Critical = true
		a.Motion.Speed = derived.SpeedCritical
	} else {
		st.Critical = false
		a.Motion.Speed = cfg.Speed
	}

	switch {
	case st.Critical && a.Senses.SensoryRadius > a.Senses.Radius:
		if st.Timers.Check(now, timerSensoryRadius, cfg.SensoryShrinkPeriod) {
			ratio := 0.0
			if derived.EnergyCritical > 0 {
				ratio = a.Energy.Value / derived.EnergyCritical
			}
			a.Senses.SensoryRadius = max(a.Senses.Radius, ratio*cfg.SensoryRadius)
		}
	case !st.Critical:
		a.Senses.SensoryRadius = cfg.SensoryRadius
		st.Timers.Delete(timerSensoryRadius)
	}
}

// feed runs the rush and eating clauses. Both end the step.
func feed(a Agent, env *Env, mods Modifiers) Outcome {
	st := a.State
	now := env.Now
	food := env.Food

	if food == nil || food.InCooldown {
		SuppressAppetite(st, now)
		return 0
	}

	if st.Mode == components.ModeRush {
		if dir, ok := food.Pos.Sub(a.Vec()).Normalize(); ok {
			a.Motion.DX, a.Motion.DY = dir.X, dir.Y
		}
		move(a, env.Cfg.Derived.SpeedRush*mods.Speed)

		if Distance(a.Vec(), food.Pos) <= food.ScentRadius/2 {
			st.Mode = components.ModeEating
			st.Stats.Meals++
			st.Timers.Delete(timerEnergyBonus)
			return OutcomeMeal
		}
		return 0
	}

	cfg := &env.Cfg.Survivor
	period := cfg.BonusFrequency
	if st.Critical {
		period = cfg.BonusFrequencyCrit
	}
	if st.Timers.Check(now, timerEnergyBonus, period) {
		if food.Quantity <= 0 {
			SuppressAppetite(st, now)
			return 0
		}
		gainEnergy(a.Energy, st, food.EnergyBonus())
		food.Consume(food.EnergyBonus())
	}

	if a.Energy.Value >= a.Energy.Max {
		SuppressAppetite(st, now)
		return OutcomeSatiated
	}
	return 0
}

// lossPeriodically takes amount every energy loss period.
func lossPeriodically(a Agent, now float64, cfg *config.SurvivorConfig, amount float64) {
	if a.State.Timers.Check(now, timerEnergyLoss, cfg.EnergyLossFrequency) {
		loseEnergy(a.Energy, a.State, amount)
	}
}

// move integrates position along the heading. A zero heading holds.
func move(a Agent, speed float64) {
	a.Pos.X += a.Motion.DX * speed
	a.Pos.Y += a.Motion.DY * speed
}

// wrap moves a Survivor that fully left the world to the opposite side.
func wrap(a Agent, b Bounds) {
	r := a.Senses.Radius
	if a.Pos.X+r < b.MinX {
		a.Pos.X = b.MaxX + r
	} else if a.Pos.X-r > b.MaxX {
		a.Pos.X = b.MinX - r
	}
	if a.Pos.Y+r < b.MinY {
		a.Pos.Y = b.MaxY + r
	} else if a.Pos.Y-r > b.MaxY {
		a.Pos.Y = b.MinY - r
	}
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
