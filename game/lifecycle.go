package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/survivors/telemetry"
)

// departed is a Survivor whose fade completed this tick. The identity is
// copied out because removals invalidate component pointers.
type departed struct {
	entity ecs.Entity
	id     uint32
	name   string
}

// sweep removes faded Survivors from the world and files their lifetime
// stats with the hall of fame. Names stay taken.
func (g *Game) sweep(now float64) {
	for _, d := range g.gone {
		if !g.world.Alive(d.entity) {
			continue
		}
		g.world.RemoveEntity(d.entity)

		if stats := g.lifetime.Remove(d.id); stats != nil {
			g.hall.Consider(d.id, stats)
		}
		if g.selected == d.id {
			g.selected = 0
		}
		g.record(telemetry.NewSurvivorEvent(telemetry.EventRemoved, g.tick, now, d.id, d.name))
		slog.Debug("survivor removed", "id", d.id, "name", d.name, "tick", g.tick)
	}
	g.gone = g.gone[:0]
}

// observe runs the watcher over the living population and applies the
// podium flags it returns.
func (g *Game) observe() {
	residents := make([]telemetry.Resident, len(g.agents))
	for i, a := range g.agents {
		st := a.State
		residents[i] = telemetry.Resident{
			ID:        a.Identity.ID,
			Name:      a.Identity.Name,
			Energy:    a.Energy.Value,
			Mode:      st.Mode,
			Following: st.Following,
			Critical:  st.Critical,
		}
		st.OnPodium = false
		st.IsFirst = false
		g.lifetime.Sync(a.Identity.ID, st.Stats, a.Energy.Value)
		g.lifetime.UpdateSurvivalTime(a.Identity.ID, g.clock.Now())
	}

	g.obs = g.watcher.Observe(residents)

	if len(g.obs.Podium) > 0 {
		places := make(map[uint32]int, len(g.obs.Podium))
		for _, p := range g.obs.Podium {
			places[p.ID] = p.Place
		}
		for _, a := range g.agents {
			if place, ok := places[a.Identity.ID]; ok {
				a.State.OnPodium = true
				a.State.IsFirst = place == 1
			}
		}
	}

	if g.obs.PodiumOpened {
		slog.Info("podium opened", "tick", g.tick, "living", g.obs.Census.Living)
		if g.bookmarks != nil {
			g.emitBookmark(g.bookmarks.PodiumOpened(g.tick, g.obs.Census.Living))
		}
	}
	if g.obs.WinnerIsNew {
		w := *g.obs.Winner
		g.winnerTick = g.tick
		g.record(telemetry.Event{
			Type: telemetry.EventWinnerDeclared, Tick: g.tick, Time: g.clock.Now(),
			EntityID: w.ID, Name: w.Name, Amount: w.Energy,
		})
		slog.Info("winner", "id", w.ID, "name", w.Name, "tick", g.tick)
		if g.bookmarks != nil {
			g.emitBookmark(g.bookmarks.Winner(g.tick, w))
		}
	}
	g.over = g.obs.Winner != nil || len(g.agents) == 0
}
