package game

import (
	"cmp"
	"slices"

	"github.com/pthm-cable/survivors/systems"
	"github.com/pthm-cable/survivors/telemetry"
)

// collectAgents rebuilds the agent slice from the ECS world, sorted by ID.
// The pointers stay valid until the next structural change.
func (g *Game) collectAgents() {
	g.agents = g.agents[:0]
	query := g.survivorFilter.Query()
	for query.Next() {
		id, pos, motion, energy, senses, tr, state := query.Get()
		g.agents = append(g.agents, systems.Agent{
			Entity:   query.Entity(),
			Identity: id,
			Pos:      pos,
			Motion:   motion,
			Energy:   energy,
			Senses:   senses,
			Traits:   tr,
			State:    state,
		})
	}
	slices.SortFunc(g.agents, func(a, b systems.Agent) int {
		return cmp.Compare(a.Identity.ID, b.Identity.ID)
	})
}

// env packages the shared world for this tick.
func (g *Game) env() *systems.Env {
	return &systems.Env{
		Now:     g.clock.Now(),
		Cfg:     g.cfg,
		Food:    g.food,
		Climate: g.climate(),
		Bounds:  g.bounds,
		Rng:     g.rng,
	}
}

// simulationStep runs a single tick of the simulation.
func (g *Game) simulationStep() {
	g.perf.StartTick()
	g.clock.Advance(g.cfg.Physics.DT)
	now := g.clock.Now()

	// 1. Climate
	g.perf.StartPhase(telemetry.PhaseWeather)
	if g.weather.Update(now) {
		climate := g.weather.Climate().String()
		g.record(telemetry.NewWorldEvent(telemetry.EventClimateChange, g.tick, now, climate))
		if g.bookmarks != nil {
			if b := g.bookmarks.ClimateChanged(g.tick, climate); b != nil {
				g.emitBookmark(*b)
			}
		}
	}
	env := g.env()
	world := systems.WorldPenalties(env.Climate)

	// 2. Danger animation and rage
	g.perf.StartPhase(telemetry.PhaseDanger)
	if g.danger.Update(now, world.RageCooldown) {
		g.record(telemetry.NewWorldEvent(telemetry.EventAttack, g.tick, now, ""))
	}

	// 3. Interaction pass
	g.perf.StartPhase(telemetry.PhaseSpatialGrid)
	g.collectAgents()
	g.pass.Index(g.agents)

	g.perf.StartPhase(telemetry.PhaseHazard)
	for _, hit := range g.pass.DetectHazard(g.agents, g.danger, now, &g.cfg.Survivor) {
		if hit.Damaged {
			a := g.agents[hit.Index]
			g.record(telemetry.NewHitEvent(g.tick, now, a.Identity.ID, a.Identity.Name, g.danger.Damage()))
		}
	}

	g.perf.StartPhase(telemetry.PhaseFollow)
	g.pass.PropagateFollow(g.agents)

	g.perf.StartPhase(telemetry.PhaseFood)
	ev, rush, _ := g.pass.UpdateFood(g.agents, env, g.danger)
	switch ev {
	case systems.FoodDepleted:
		g.record(telemetry.NewWorldEvent(telemetry.EventFoodDepleted, g.tick, now, ""))
	case systems.FoodRespawned:
		g.record(telemetry.NewWorldEvent(telemetry.EventFoodRespawned, g.tick, now, ""))
	}
	for _, i := range rush.Disengaged {
		a := g.agents[i]
		g.record(telemetry.NewSurvivorEvent(telemetry.EventDisengaged, g.tick, now, a.Identity.ID, a.Identity.Name))
	}
	g.rush = rush

	g.perf.StartPhase(telemetry.PhaseMemory)
	g.pass.CheckMemory(g.agents, g.danger, now)

	// 4. Survivor state machines
	g.perf.StartPhase(telemetry.PhaseSurvivors)
	g.gone = g.gone[:0]
	for _, a := range g.agents {
		g.applyOutcome(a, systems.StepSurvivor(a, env), now)
	}
	g.pass.ReturnHeadings(g.agents)

	// 5. Removal sweep
	g.perf.StartPhase(telemetry.PhaseCleanup)
	if len(g.gone) > 0 {
		g.sweep(now)
		g.collectAgents()
	}

	// 6. Census, podium, winner
	g.perf.StartPhase(telemetry.PhaseCensus)
	g.observe()

	g.tick++

	// 7. Telemetry
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.publish()
	g.flushTelemetry()

	g.perf.EndTick()
}

// applyOutcome turns a Survivor step result into events and lifetime stats.
func (g *Game) applyOutcome(a systems.Agent, out systems.Outcome, now float64) {
	id, name := a.Identity.ID, a.Identity.Name
	if out.Has(systems.OutcomeMeal) {
		g.record(telemetry.NewSurvivorEvent(telemetry.EventMeal, g.tick, now, id, name))
	}
	if out.Has(systems.OutcomeSatiated) {
		g.record(telemetry.NewSurvivorEvent(telemetry.EventSatiated, g.tick, now, id, name))
	}
	if out.Has(systems.OutcomeStarved) {
		g.record(telemetry.NewSurvivorEvent(telemetry.EventStarved, g.tick, now, id, name))
		g.lifetime.RecordStarved(id, now)
	}
	if out.Has(systems.OutcomeFaded) {
		g.gone = append(g.gone, departed{entity: a.Entity, id: id, name: name})
	}
}
