// Package traits draws the immutable per-Survivor traits and the values
// derived from them.
package traits

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
)

// Ranges holds the legal trait ranges and the flee duration span.
type Ranges struct {
	AudacityMin, AudacityMax     float64
	ResilienceMin, ResilienceMax float64
	FleeMin, FleeMax             float64 // seconds
}

// RangesFromConfig builds Ranges from the survivor config.
func RangesFromConfig(cfg config.SurvivorConfig) Ranges {
	return Ranges{
		AudacityMin:   cfg.AudacityMin,
		AudacityMax:   cfg.AudacityMax,
		ResilienceMin: cfg.ResilienceMin,
		ResilienceMax: cfg.ResilienceMax,
		FleeMin:       cfg.FleeDurationMin,
		FleeMax:       cfg.FleeDurationMax,
	}
}

// Draw samples audacity and resilience uniformly within their ranges and
// derives the flee duration.
func Draw(r Ranges, src rand.Source) components.Traits {
	audacity := distuv.Uniform{Min: r.AudacityMin, Max: r.AudacityMax, Src: src}.Rand()
	resilience := r.ResilienceMin
	if r.ResilienceMax > r.ResilienceMin {
		resilience = distuv.Uniform{Min: r.ResilienceMin, Max: r.ResilienceMax, Src: src}.Rand()
	}
	return components.Traits{
		Audacity:     audacity,
		Resilience:   resilience,
		FleeDuration: FleeDuration(r, audacity),
	}
}

// FleeDuration maps audacity linearly onto [FleeMin, FleeMax], with the
// boldest Survivors fleeing for the shortest time.
func FleeDuration(r Ranges, audacity float64) float64 {
	span := r.AudacityMax - r.AudacityMin
	if span <= 0 {
		return r.FleeMin
	}
	a := min(max(audacity, r.AudacityMin), r.AudacityMax)
	return (r.AudacityMax-a)/span*(r.FleeMax-r.FleeMin) + r.FleeMin
}

// SecurityDistance is how far from Danger a Survivor tries to stay while it
// remembers an encounter: edgeFactor Danger edges plus scale/audacity.
func SecurityDistance(audacity, dangerEdge, edgeFactor, scale float64) float64 {
	if audacity <= 0 {
		audacity = 1
	}
	return dangerEdge*edgeFactor + scale/audacity
}

// MemoryDuration is how long an encounter is remembered, proportional to
// the energy the Survivor had when it happened.
func MemoryDuration(energy, ratio float64) float64 {
	return max(energy, 0) * ratio
}

// Temperament returns a display label for an audacity value.
func Temperament(r Ranges, audacity float64) string {
	span := r.AudacityMax - r.AudacityMin
	if span <= 0 {
		return "Steady"
	}
	switch norm := (audacity - r.AudacityMin) / span; {
	case norm >= 0.75:
		return "Reckless"
	case norm >= 0.5:
		return "Bold"
	case norm >= 0.25:
		return "Wary"
	default:
		return "Timid"
	}
}
