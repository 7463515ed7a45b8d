package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/survivors/telemetry"
	"github.com/pthm-cable/survivors/traits"
)

// record counts an event in the current window and buffers it for events.csv.
func (g *Game) record(e telemetry.Event) {
	g.collector.Record(e)
	if g.output == nil {
		return
	}
	g.events.Add(e)
	if g.events.Full() {
		g.flushEvents()
	}
}

func (g *Game) flushEvents() {
	if g.output == nil || g.events.Len() == 0 {
		return
	}
	if err := g.output.WriteEvents(g.events.Drain()); err != nil {
		slog.Error("failed to write events", "error", err)
	}
}

// emitBookmark logs, writes and snapshots a bookmark.
func (g *Game) emitBookmark(b telemetry.Bookmark) {
	if g.logStats {
		b.LogBookmark()
	}
	if g.output == nil {
		return
	}
	if err := g.output.WriteBookmark(b); err != nil {
		slog.Error("failed to write bookmark", "error", err)
	}
	g.saveSnapshot(&b)
}

// flushTelemetry closes the stats window when it is due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	energies := make([]float64, len(g.agents))
	for i, a := range g.agents {
		energies[i] = a.Energy.Value
	}
	stats := g.collector.Flush(g.tick, g.obs.Census, energies, g.worldSample())
	g.lastStats = stats
	g.windows++
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		g.flushEvents()
	}

	if g.bookmarks != nil {
		for _, b := range g.bookmarks.Check(stats) {
			g.emitBookmark(b)
		}
	}
}

func (g *Game) worldSample() telemetry.WorldSample {
	return telemetry.WorldSample{
		FoodQuantity:   g.food.Quantity,
		FoodFull:       g.food.Full,
		DangerRage:     g.danger.Rage,
		DangerRotation: g.danger.RotationSpeed,
		Climate:        g.weather.Climate().String(),
		Temperature:    g.weather.Temperature(),
	}
}

// publish writes the debug board.
func (g *Game) publish() {
	b := g.board
	c := g.obs.Census
	initial := max(g.watcher.Initial(), 1)

	b.Add("Elapsed", fmt.Sprintf("%.1fs", g.clock.Now()))
	b.Add("Alive", fmt.Sprintf("%d (%.0f%%)", c.Living, 100*float64(c.Living)/float64(initial)))
	b.Add("Dead", fmt.Sprintf("%d (%.0f%%)", c.Dead, 100*float64(c.Dead)/float64(initial)))
	b.Add("In danger", c.InDanger)
	b.Add("Following", c.Following)
	b.Add("Critical", c.Critical)
	b.Add("Energy mean", c.EnergyMean)
	b.Add("Eaters", g.rush.Eaters)
	b.Add("Food full", g.food.Full)
	b.Add("Food quantity", g.food.Quantity)
	b.Add("Food edge", g.food.Edge)
	b.Add("Food scent", g.food.ScentRadius)
	b.Add("Danger rotation", g.danger.RotationSpeed)
	b.Add("Danger rage", g.danger.Rage)
	b.Add("Climate", g.weather.Climate())
	b.Add("Temperature", g.weather.Temperature())
	for _, p := range g.obs.Podium {
		b.Add(fmt.Sprintf("Podium #%d", p.Place), fmt.Sprintf("%s (%.1f)", p.Name, p.Energy))
	}
}

// saveSnapshot writes the current state next to the telemetry output.
func (g *Game) saveSnapshot(b *telemetry.Bookmark) {
	snap := g.Snapshot()
	snap.Bookmark = b
	path, err := g.output.WriteSnapshot(snap)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path, "tick", g.tick)
}

// Snapshot returns a read-only copy of the world.
func (g *Game) Snapshot() *telemetry.Snapshot {
	ws := g.weather.State()
	bg := ws.Background
	snap := &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		Seed:        g.seed,
		WorldWidth:  g.cfg.Derived.WorldW,
		WorldHeight: g.cfg.Derived.WorldH,
		Tick:        g.tick,
		Time:        g.clock.Now(),
		Climate:     ws.Climate.String(),
		Temperature: ws.Temperature,
		Background:  [3]uint8{bg.R, bg.G, bg.B},
		Danger: telemetry.DangerState{
			X:             g.danger.Pos.X,
			Y:             g.danger.Pos.Y,
			Edge:          g.danger.Edge,
			Angle:         g.danger.Angle,
			Rage:          g.danger.Rage,
			RotationSpeed: g.danger.RotationSpeed,
			Phase:         g.danger.Phase.String(),
			Hits:          g.danger.Hits,
		},
		Food: telemetry.FoodState{
			X:           g.food.Pos.X,
			Y:           g.food.Pos.Y,
			Edge:        g.food.Edge,
			ScentRadius: g.food.ScentRadius,
			Quantity:    g.food.Quantity,
			Full:        g.food.Full,
			InCooldown:  g.food.InCooldown,
			Generation:  g.food.Generation,
		},
		Survivors: make([]telemetry.SurvivorState, 0, len(g.agents)),
	}

	for _, a := range g.agents {
		st := a.State
		snap.Survivors = append(snap.Survivors, telemetry.SurvivorState{
			ID:               a.Identity.ID,
			Name:             a.Identity.Name,
			X:                a.Pos.X,
			Y:                a.Pos.Y,
			DX:               a.Motion.DX,
			DY:               a.Motion.DY,
			Radius:           a.Senses.Radius,
			SensoryRadius:    a.Senses.SensoryRadius,
			Energy:           a.Energy.Value,
			EnergyMax:        a.Energy.Max,
			Mode:             st.Mode,
			Following:        st.Following,
			Critical:         st.Critical,
			DejaVu:           st.DejaVu,
			AbleToEat:        st.AbleToEat,
			OnPodium:         st.OnPodium,
			IsFirst:          st.IsFirst,
			FadeProgress:     st.FadeProgress,
			SecurityDistance: st.SecurityDistance,
			Audacity:         a.Traits.Audacity,
			Resilience:       a.Traits.Resilience,
			Stats:            st.Stats,
		})
	}
	return snap
}

// Report summarises the run so far.
func (g *Game) Report() telemetry.Report {
	r := telemetry.Report{
		Seed:          g.seed,
		Ticks:         g.tick,
		ElapsedSec:    g.clock.Now(),
		ClimateCycles: g.weather.Cycles(),
		Initial:       g.watcher.Initial(),
		Remaining:     len(g.agents),
		DangerHits:    g.danger.Hits,
		FoodRespawns:  g.food.Generation,
		Fallen:        g.hall.Entries(),
	}

	winner, ok := g.watcher.Winner()
	if !ok {
		return r
	}
	wr := &telemetry.WinnerReport{ID: winner.ID, Name: winner.Name, Energy: winner.Energy}
	if a, ok := g.agentByID(winner.ID); ok {
		st := a.State.Stats
		wr.Temperament = traits.Temperament(g.ranges, a.Traits.Audacity)
		wr.Audacity = a.Traits.Audacity
		wr.Resilience = a.Traits.Resilience
		wr.Energy = a.Energy.Value
		wr.Hits = st.Hits
		wr.Meals = st.Meals
		wr.EnergyLost = st.EnergyLost
		wr.EnergyRecovered = st.EnergyRecovered
		wr.LifetimeSec = g.clock.Now() - st.BornAt
	} else {
		// Already swept: the hall of fame kept its record.
		for _, e := range g.hall.Entries() {
			if e.EntityID == winner.ID {
				wr.Hits = e.Hits
				wr.Meals = e.Meals
				wr.EnergyRecovered = e.EnergyRecovered
				wr.LifetimeSec = e.SurvivalTimeSec
				break
			}
		}
	}
	r.Winner = wr
	return r
}

// WriteReport logs the report and saves it with the telemetry output.
func (g *Game) WriteReport() error {
	r := g.Report()
	r.Log()
	g.hall.LogStats()
	if err := g.output.WriteReport(r); err != nil {
		return err
	}
	return g.output.WriteHallOfFame(g.hall)
}
