// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/survivors/timers"

// Identity names a Survivor. ID grows with creation order and is the
// iteration tie-break everywhere.
type Identity struct {
	ID   uint32 `inspect:"label"`
	Name string `inspect:"label"`
}

// Energy is a Survivor's energy, always within [0, Max].
type Energy struct {
	Value float64 `inspect:"bar,max:60"`
	Max   float64 `inspect:"skip"`
}

// Add changes energy by delta and clamps to [0, Max].
// It returns the change actually applied.
func (e *Energy) Add(delta float64) float64 {
	before := e.Value
	e.Value += delta
	if e.Value < 0 {
		e.Value = 0
	} else if e.Value > e.Max {
		e.Value = e.Max
	}
	return e.Value - before
}

// Ratio returns Value/Max, or 0 when Max is not positive.
func (e Energy) Ratio() float64 {
	if e.Max <= 0 {
		return 0
	}
	return e.Value / e.Max
}

// Senses holds a Survivor's body and perception radii.
type Senses struct {
	Radius        float64 `inspect:"label,fmt:%.1f"`
	SensoryRadius float64 `inspect:"bar,max:60"` // shrinks while critical
}

// Traits are drawn at creation and never change.
type Traits struct {
	Audacity     float64 `inspect:"bar,max:10"`
	Resilience   float64 `inspect:"bar,max:10"`
	FleeDuration float64 `inspect:"label,fmt:%.2fs"` // derived from audacity
}

// Stats accumulates what happened to a Survivor over its life.
type Stats struct {
	Hits            int     `inspect:"label"`
	Meals           int     `inspect:"label"`
	EnergyLost      float64 `inspect:"label,fmt:%.1f"`
	EnergyRecovered float64 `inspect:"label,fmt:%.1f"`
	BornAt          float64 `inspect:"skip"` // simulated seconds
}

// State is a Survivor's behaviour state.
// Mode is exclusive; the booleans are orthogonal to it.
type State struct {
	Mode Mode `inspect:"label"`

	Following bool `inspect:"bool"` // copying a fleeing neighbour's direction this tick
	Critical  bool `inspect:"bool"`
	DejaVu    bool `inspect:"bool"` // remembers a Danger encounter
	AbleToEat bool `inspect:"bool"`
	OnPodium  bool `inspect:"bool"`
	IsFirst   bool `inspect:"bool"`

	SecurityDistance float64 `inspect:"label,fmt:%.1f"`
	MemoryDuration   float64 `inspect:"label,fmt:%.1fs"`
	FadeProgress     float64 `inspect:"bar,max:1"`
	NextTurn         float64 `inspect:"skip"` // seconds until the next random heading

	Stats  Stats           `inspect:"skip"`
	Timers timers.Registry `inspect:"skip"`
}

// Mobile reports whether the Survivor still takes part in the simulation.
func (s *State) Mobile() bool {
	return s.Mode != ModeImmobilized && s.Mode != ModeFading
}

// Fleeing reports whether the Survivor is running from Danger right now.
func (s *State) Fleeing() bool {
	return s.Mode == ModeFlee
}

// Engaged reports whether the Survivor is rushing toward or eating the food.
func (s *State) Engaged() bool {
	return s.Mode == ModeRush || s.Mode == ModeEating
}
