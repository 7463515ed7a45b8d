// Package game owns the simulation world: it builds the population, runs
// the tick pipeline in a fixed order, sweeps out faded Survivors and hands
// read-only snapshots to the front-end.
package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/names"
	"github.com/pthm-cable/survivors/systems"
	"github.com/pthm-cable/survivors/telemetry"
	"github.com/pthm-cable/survivors/timers"
	"github.com/pthm-cable/survivors/traits"
	"github.com/pthm-cable/survivors/weather"
)

// hallOfFameSize is how many fallen Survivors the report remembers.
const hallOfFameSize = 10

// Game holds the complete simulation state.
type Game struct {
	cfg  *config.Config
	seed uint64
	rng  *rand.Rand

	world *ecs.World

	// A Survivor is exactly these seven components.
	survivorMapper *ecs.Map7[
		components.Identity,
		components.Position,
		components.Motion,
		components.Energy,
		components.Senses,
		components.Traits,
		components.State,
	]
	survivorFilter *ecs.Filter7[
		components.Identity,
		components.Position,
		components.Motion,
		components.Energy,
		components.Senses,
		components.Traits,
		components.State,
	]

	clock   *timers.SimClock
	weather *weather.Weather
	danger  *systems.Danger
	food    *systems.Food
	pass    *systems.InteractionPass
	bounds  systems.Bounds
	ranges  traits.Ranges
	names   names.Allocator

	// Rebuilt every tick, sorted by Identity.ID.
	agents []systems.Agent
	gone   []departed
	rush   systems.RushResult

	// Telemetry
	registry  *systems.SystemRegistry
	watcher   *telemetry.Watcher
	obs       telemetry.Observation
	board     telemetry.Sink
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	events    *telemetry.EventLog
	lifetime  *telemetry.LifetimeTracker
	hall      *telemetry.HallOfFame
	bookmarks *telemetry.BookmarkDetector
	output    *telemetry.OutputManager
	logStats  bool

	// State
	tick           int32
	nextID         uint32
	paused         bool
	stepsPerUpdate int
	selected       uint32 // 0 = none
	winnerTick     int32
	over           bool

	lastStats telemetry.WindowStats
	windows   int
}

// NewGame builds the world and places the initial population.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	opts = opts.withDefaults()
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		seed:  opts.Seed,
		rng:   rand.New(rand.NewPCG(opts.Seed, 0x5eed)),
		world: world,
		survivorMapper: ecs.NewMap7[
			components.Identity,
			components.Position,
			components.Motion,
			components.Energy,
			components.Senses,
			components.Traits,
			components.State,
		](world),
		survivorFilter: ecs.NewFilter7[
			components.Identity,
			components.Position,
			components.Motion,
			components.Energy,
			components.Senses,
			components.Traits,
			components.State,
		](world),
		clock:          timers.NewSimClock(),
		pass:           systems.NewInteractionPass(cfg),
		bounds:         systems.WorldBounds(cfg.Derived.WorldW, cfg.Derived.WorldH),
		ranges:         traits.RangesFromConfig(cfg.Survivor),
		names:          opts.Names,
		registry:       systems.NewSystemRegistry(),
		board:          opts.Board,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Physics.DT),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		events:         telemetry.NewEventLog(cfg.Telemetry.EventsBuffer),
		lifetime:       telemetry.NewLifetimeTracker(),
		hall:           telemetry.NewHallOfFame(hallOfFameSize),
		logStats:       opts.LogStats,
		nextID:         1,
		stepsPerUpdate: opts.StepsPerUpdate,
	}
	if g.names == nil {
		g.names = names.NewSyllables(cfg.Names, rand.New(rand.NewPCG(opts.Seed, 0x6e616d65)))
	}
	if cfg.Bookmarks.Enabled {
		g.bookmarks = telemetry.NewBookmarkDetector(cfg.Bookmarks.HistorySize, cfg.Bookmarks.CrashThreshold)
	}

	w, err := weather.New(cfg.Weather, rand.NewPCG(opts.Seed, 0x77656174))
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	g.weather = w

	if err := g.populate(); err != nil {
		return nil, fmt.Errorf("populate world: %w", err)
	}
	g.watcher = telemetry.NewWatcher(cfg.Watcher, cfg.World.Population)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("telemetry output: %w", err)
		}
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, fmt.Errorf("telemetry output: %w", err)
		}
		g.output = om
	}

	g.collectAgents()
	g.observe()
	return g, nil
}

// Update runs stepsPerUpdate simulation steps unless paused or over.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate && !g.over; i++ {
		g.simulationStep()
	}
}

// Step runs exactly one simulation step, ignoring pause.
func (g *Game) Step() {
	if !g.over {
		g.simulationStep()
	}
}

// Close flushes buffered events and closes telemetry files.
func (g *Game) Close() error {
	g.flushEvents()
	return g.output.Close()
}

// Config returns the configuration the game runs with.
func (g *Game) Config() *config.Config { return g.cfg }

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.tick }

// Now returns the simulated time in seconds.
func (g *Game) Now() float64 { return g.clock.Now() }

// Population returns the number of Survivors in the world.
func (g *Game) Population() int { return len(g.agents) }

// Over reports whether a winner was declared or nobody is left.
func (g *Game) Over() bool { return g.over }

// Observation returns the watcher's latest conclusions.
func (g *Game) Observation() telemetry.Observation { return g.obs }

// LastWindow returns the most recent stats window and how many windows
// have closed so far.
func (g *Game) LastWindow() (telemetry.WindowStats, int) { return g.lastStats, g.windows }

// Registry returns the system registry used for perf phase names.
func (g *Game) Registry() *systems.SystemRegistry { return g.registry }

// PerfStats returns the rolling perf statistics.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perf.Stats() }

// RecordFrame feeds frame timing to the perf collector.
func (g *Game) RecordFrame() { g.perf.RecordFrame() }

// climate packages the weather state the systems read this tick.
func (g *Game) climate() systems.Climate {
	return systems.Climate{
		Penalties:   g.weather.Penalties(),
		Temperature: g.weather.TemperatureFactor(),
		Weighting:   g.weather.Weighting(),
		Resilience: weather.ResilienceFactor{
			Min: g.cfg.Survivor.ResilienceMin,
			Max: g.cfg.Survivor.ResilienceMax,
		},
	}
}
