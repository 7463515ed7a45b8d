package systems

import (
	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/timers"
)

// Phase is the Danger's attack animation phase.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseAttacking
	PhaseReturning
)

// String returns the display name for a Phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAttacking:
		return "Attacking"
	case PhaseReturning:
		return "Returning"
	default:
		return "Unknown"
	}
}

const (
	timerAttack         = "attack"
	timerReturn         = "return"
	timerRage           = "rage_cooldown"
	timerAttackCooldown = "attack_cooldown"
)

// Danger is the territorial hazard. Positions are centres.
type Danger struct {
	Anchor Vec // resting position
	Pos    Vec // displaced during an attack
	Edge   float64

	Rage          float64
	RotationSpeed float64 // degrees per tick
	Angle         float64 // degrees, cosmetic

	Phase  Phase
	Target Vec
	Hits   int // connected attacks

	cfg    config.DangerConfig
	timers timers.Registry
}

// NewDanger places a Danger at anchor.
func NewDanger(cfg config.DangerConfig, anchor Vec) *Danger {
	return &Danger{
		Anchor: anchor,
		Pos:    anchor,
		Edge:   cfg.Edge,
		cfg:    cfg,
	}
}

// Attack starts an attack toward target. It is a no-op unless the Danger is
// idle, so only one target is tracked per cycle. It reports whether an
// attack started.
func (d *Danger) Attack(now float64, target Vec) bool {
	if d.Phase != PhaseIdle {
		return false
	}
	d.Target = target
	d.Phase = PhaseAttacking
	d.timers.Start(now, timerAttack)
	return true
}

// CanDamage reports whether the damage cooldown is free and, if so,
// restarts it. The first call always succeeds.
func (d *Danger) CanDamage(now float64) bool {
	return d.timers.Cooldown(now, timerAttackCooldown, d.cfg.AttackCooldown)
}

// Damage returns the energy taken from a Survivor per hit.
func (d *Danger) Damage() float64 { return d.cfg.Damage }

// Update advances the attack animation and rage decay to now.
// rageCooldownScale multiplies the rage decay period.
// It returns true when an attack connected during this call.
func (d *Danger) Update(now, rageCooldownScale float64) bool {
	connected := false

	switch d.Phase {
	case PhaseAttacking:
		elapsed, _ := d.timers.Elapsed(now, timerAttack)
		if elapsed < d.cfg.AttackDuration {
			d.step(d.Target, d.cfg.AttackSpeed)
			break
		}
		d.Phase = PhaseReturning
		d.timers.Start(now, timerReturn)
		d.step(d.Anchor, d.cfg.ReturnSpeed)

	case PhaseReturning:
		elapsed, _ := d.timers.Elapsed(now, timerReturn)
		if elapsed < d.cfg.ReturnDuration {
			d.step(d.Anchor, d.cfg.ReturnSpeed)
			break
		}
		d.connect(now)
		connected = true
	}

	if d.timers.Has(timerRage) && d.timers.Check(now, timerRage, d.cfg.RageCooldown*rageCooldownScale) {
		if d.RotationSpeed > 0 {
			d.RotationSpeed--
			d.Rage--
		}
	}

	d.Angle += d.RotationSpeed
	if d.Angle >= 360 {
		d.Angle -= 360
	}
	return connected
}

// connect ends a cycle: the attack counts as a hit and rage grows.
func (d *Danger) connect(now float64) {
	d.Hits++
	if d.RotationSpeed < d.cfg.RotationSpeedMax {
		d.RotationSpeed++
		d.Rage++
	}
	d.timers.Start(now, timerRage)
	d.Pos = d.Anchor
	d.Phase = PhaseIdle
}

// step moves Pos toward to by speed, without overshooting.
func (d *Danger) step(to Vec, speed float64) {
	delta := to.Sub(d.Pos)
	dist := delta.Len()
	if dist <= speed {
		d.Pos = to
		return
	}
	dir, ok := delta.Normalize()
	if !ok {
		return
	}
	d.Pos = d.Pos.Add(dir.Scale(speed))
}
