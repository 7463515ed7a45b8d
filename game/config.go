package game

import (
	"github.com/pthm-cable/survivors/names"
	"github.com/pthm-cable/survivors/telemetry"
)

// Speed bounds for the steps-per-update multiplier.
const (
	MinSteps = 1
	MaxSteps = 10
)

// Options holds everything a Game needs besides the config.
type Options struct {
	Seed uint64

	// Names overrides the default seeded syllable allocator.
	Names names.Allocator

	// Board receives debug values every tick. Nil discards them.
	Board telemetry.Sink

	// OutputDir enables CSV telemetry, snapshots and the report.
	OutputDir string

	// LogStats logs each stats window and perf summary through slog.
	LogStats bool

	// StepsPerUpdate is the initial speed multiplier.
	StepsPerUpdate int
}

// DefaultOptions returns the options of a plain windowed run.
func DefaultOptions() Options {
	return Options{Seed: 42, StepsPerUpdate: 1}
}

func (o Options) withDefaults() Options {
	if o.Board == nil {
		o.Board = telemetry.Discard{}
	}
	o.StepsPerUpdate = min(max(o.StepsPerUpdate, MinSteps), MaxSteps)
	return o
}
