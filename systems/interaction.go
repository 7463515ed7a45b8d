package systems

import (
	"log/slog"

	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/timers"
)

const timerOverbooked = "overbooked"

// InteractionReport summarises one interaction pass.
type InteractionReport struct {
	Hits      []HazardHit
	Followers int
	Rushing   int // entered Rush this tick
	Turned    int // entered DejaVuFlee this tick
	Food      FoodEvent
	Rush      RushResult
}

// InteractionPass resolves everything that couples Survivors to each other,
// to the Danger and to the Food. It owns the spatial grid and its scratch
// buffers; reuse one pass across ticks.
type InteractionPass struct {
	grid       *SpatialGrid
	buf        []Neighbor
	hits       []HazardHit
	borrowed   []borrowedHeading
	maxSensory float64

	diagnosticGap float64
	timers        timers.Registry
}

// NewInteractionPass builds a pass over a world of the given size.
func NewInteractionPass(cfg *config.Config) *InteractionPass {
	return &InteractionPass{
		grid:          NewSpatialGrid(cfg.Derived.WorldW, cfg.Derived.WorldH, cfg.Physics.GridCellSize),
		buf:           make([]Neighbor, 0, 64),
		diagnosticGap: cfg.Telemetry.DiagnosticGap,
	}
}

// Index rebuilds the spatial grid from agents. Grid entries are agent
// indices, so agents must keep their order until the next Index call.
func (p *InteractionPass) Index(agents []Agent) {
	p.grid.Clear()
	p.maxSensory = 0
	for i, a := range agents {
		p.grid.Insert(i, a.Pos.X, a.Pos.Y)
		p.maxSensory = max(p.maxSensory, a.Senses.SensoryRadius)
	}
}

// UpdateFood runs the Food lifecycle, then resource detection and rush
// regulation. A depletion sends every rusher and eater back to Search.
func (p *InteractionPass) UpdateFood(agents []Agent, env *Env, danger *Danger) (FoodEvent, RushResult, int) {
	food := env.Food
	ev, err := food.Update(env.Now, WorldPenalties(env.Climate), danger.Pos)
	if err != nil && p.diagnose(env.Now) {
		slog.Warn("food respawn failed, retrying", "err", err)
	}
	if ev == FoodDepleted {
		for _, a := range agents {
			if a.State.Engaged() {
				SuppressAppetite(a.State, env.Now)
			}
		}
	}

	started := DetectFood(agents, food, env.Now, env.Cfg)
	res := RegulateRush(agents, food, env.Cfg.Food.MaxEaters, env.Rng, env.Now)
	if res.Overbooked && p.diagnose(env.Now) {
		slog.Warn("food overbooked", "eaters", res.Eaters, "max", env.Cfg.Food.MaxEaters)
	}
	return ev, res, started
}

// Run executes the whole pass in order: hazard, follow, food, memory.
// Followers keep the borrowed heading until ReturnHeadings.
func (p *InteractionPass) Run(agents []Agent, env *Env, danger *Danger) InteractionReport {
	p.Index(agents)

	var r InteractionReport
	r.Hits = p.DetectHazard(agents, danger, env.Now, &env.Cfg.Survivor)
	r.Followers = p.PropagateFollow(agents)
	r.Food, r.Rush, r.Rushing = p.UpdateFood(agents, env, danger)
	r.Turned = p.CheckMemory(agents, danger, env.Now)
	return r
}

// diagnose rate-limits repeated warnings.
func (p *InteractionPass) diagnose(now float64) bool {
	return p.timers.Cooldown(now, timerOverbooked, p.diagnosticGap)
}
