package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/names"
	"github.com/pthm-cable/survivors/systems"
)

func testConfig(t *testing.T, population int) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.World.Population = population
	return cfg
}

func nameList(n int) *names.List {
	list := make([]string, n)
	for i := range list {
		list[i] = fmt.Sprintf("S%02d", i+1)
	}
	return names.NewList(list...)
}

func newTestGame(t *testing.T, cfg *config.Config, opts Options) *Game {
	t.Helper()
	if opts.Names == nil {
		opts.Names = nameList(cfg.World.Population)
	}
	g, err := NewGame(cfg, opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestNewGame_Population(t *testing.T) {
	cfg := testConfig(t, 30)
	g := newTestGame(t, cfg, Options{Seed: 1})

	if g.Population() != 30 {
		t.Fatalf("population = %d, want 30", g.Population())
	}

	minDist := cfg.Survivor.SensoryRadius + cfg.Survivor.DangerEdgeFactor*cfg.Danger.Edge
	margin := cfg.Survivor.SpawnMarginRatio * cfg.Survivor.SensoryRadius
	snap := g.Snapshot()
	danger := systems.Vec{X: snap.Danger.X, Y: snap.Danger.Y}
	for i, s := range snap.Survivors {
		if s.ID != uint32(i+1) {
			t.Errorf("survivor %d has ID %d, want creation order", i, s.ID)
		}
		if d := systems.Distance(danger, systems.Vec{X: s.X, Y: s.Y}); d < minDist {
			t.Errorf("%s spawned %.1f from danger, want >= %.1f", s.Name, d, minDist)
		}
		if s.X < margin || s.Y < margin || s.X > cfg.Derived.WorldW-margin || s.Y > cfg.Derived.WorldH-margin {
			t.Errorf("%s spawned inside the margin at (%.1f, %.1f)", s.Name, s.X, s.Y)
		}
		if s.Mode != components.ModeSearch || s.Energy != cfg.Survivor.EnergyMax {
			t.Errorf("%s starts as %v with %.1f energy", s.Name, s.Mode, s.Energy)
		}
	}
}

func TestNewGame_PlacementFailure(t *testing.T) {
	cfg := testConfig(t, 5)
	cfg.Survivor.DangerEdgeFactor = 1e6

	_, err := NewGame(cfg, Options{Seed: 1, Names: nameList(5)})
	if !errors.Is(err, systems.ErrNoPlacement) {
		t.Errorf("error = %v, want ErrNoPlacement", err)
	}
}

func TestNewGame_NamesExhausted(t *testing.T) {
	cfg := testConfig(t, 5)
	_, err := NewGame(cfg, Options{Seed: 1, Names: nameList(3)})
	if !errors.Is(err, names.ErrExhausted) {
		t.Errorf("error = %v, want ErrExhausted", err)
	}
}

func TestGame_Deterministic(t *testing.T) {
	cfg := testConfig(t, 40)
	a := newTestGame(t, cfg, Options{Seed: 9})
	b := newTestGame(t, cfg, Options{Seed: 9})

	for i := 0; i < 300; i++ {
		a.Step()
		b.Step()
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Danger != sb.Danger || sa.Food != sb.Food {
		t.Fatalf("world diverged: %+v vs %+v", sa.Danger, sb.Danger)
	}
	if len(sa.Survivors) != len(sb.Survivors) {
		t.Fatalf("population diverged: %d vs %d", len(sa.Survivors), len(sb.Survivors))
	}
	for i := range sa.Survivors {
		if sa.Survivors[i] != sb.Survivors[i] {
			t.Fatalf("survivor %d diverged:\n%+v\n%+v", i, sa.Survivors[i], sb.Survivors[i])
		}
	}
}

func TestGame_RemovalSweep(t *testing.T) {
	cfg := testConfig(t, 20)
	list := nameList(20)
	g := newTestGame(t, cfg, Options{Seed: 3, Names: list})

	victim := g.agents[0]
	victim.Energy.Value = 0
	name := victim.Identity.Name

	g.Step()
	if mode := g.agents[0].State.Mode; mode != components.ModeImmobilized {
		t.Fatalf("starved survivor mode = %v, want Immobilized", mode)
	}

	limit := int32((cfg.Survivor.ImmobilizeDuration+cfg.Survivor.FadeDuration)/cfg.Physics.DT) + 10
	for g.Population() == 20 && g.Tick() < limit {
		g.Step()
	}

	if g.Population() != 19 {
		t.Fatalf("population = %d after %d ticks, want 19", g.Population(), g.Tick())
	}
	if _, ok := g.agentByID(1); ok {
		t.Error("faded survivor is still in the world")
	}
	if list.Taken() != 20 {
		t.Errorf("names taken = %d, want 20; a fallen survivor keeps its name", list.Taken())
	}
	fallen := g.Report().Fallen
	if len(fallen) != 1 || fallen[0].Name != name {
		t.Errorf("hall of fame = %+v, want %s", fallen, name)
	}
	if c := g.Observation().Census; c.Dead != 1 || c.Living != 19 {
		t.Errorf("census = %+v", c)
	}
}

func TestGame_SingleSurvivorWins(t *testing.T) {
	cfg := testConfig(t, 1)
	g := newTestGame(t, cfg, Options{Seed: 5})

	if !g.Over() {
		t.Fatal("a lone survivor should win at once")
	}
	r := g.Run(context.Background(), 100)
	if r.Ticks != 0 {
		t.Errorf("ran %d ticks after the game was over", r.Ticks)
	}
	if r.Winner == nil || r.Winner.ID != 1 || r.Winner.Temperament == "" {
		t.Errorf("winner = %+v", r.Winner)
	}
	if s := g.Snapshot().Survivors[0]; !s.OnPodium || !s.IsFirst {
		t.Errorf("winner flags = podium %v first %v", s.OnPodium, s.IsFirst)
	}
}

func TestGame_PodiumFlags(t *testing.T) {
	cfg := testConfig(t, 4)
	cfg.Watcher.PodiumThreshold = 10
	cfg.Watcher.PodiumPlaces = 3
	g := newTestGame(t, cfg, Options{Seed: 5})

	g.agents[2].Energy.Value = cfg.Survivor.EnergyMax
	for i, a := range g.agents {
		if i != 2 {
			a.Energy.Value = 30 - float64(i)
		}
	}
	g.observe()

	var onPodium int
	for _, a := range g.agents {
		if a.State.OnPodium {
			onPodium++
		}
		if a.State.IsFirst != (a.Identity.ID == 3) {
			t.Errorf("survivor %d IsFirst = %v", a.Identity.ID, a.State.IsFirst)
		}
	}
	if onPodium != 3 {
		t.Errorf("%d survivors on the podium, want 3", onPodium)
	}
	if g.agents[3].State.OnPodium {
		t.Error("lowest energy survivor is on the podium")
	}
}

func TestGame_Commands(t *testing.T) {
	g := newTestGame(t, testConfig(t, 10), Options{Seed: 2})

	g.SetSpeed(50)
	if g.Speed() != MaxSteps {
		t.Errorf("speed = %d, want clamp to %d", g.Speed(), MaxSteps)
	}
	g.SetSpeed(1)
	g.Slower()
	if g.Speed() != MinSteps {
		t.Errorf("speed = %d, want %d", g.Speed(), MinSteps)
	}

	g.TogglePause()
	g.Update()
	if g.Tick() != 0 {
		t.Error("paused game advanced")
	}
	g.TogglePause()
	g.Faster()
	g.Update()
	if g.Tick() != 2 {
		t.Errorf("tick = %d after one update at speed 2", g.Tick())
	}

	a := g.agents[4]
	if !g.SelectAt(a.Pos.X+1, a.Pos.Y) || g.Selected() != a.Identity.ID {
		t.Errorf("SelectAt picked %d, want %d", g.Selected(), a.Identity.ID)
	}
	if inspected, ok := g.Inspect(); !ok || inspected.Identity.ID != a.Identity.ID {
		t.Error("Inspect did not return the selection")
	}
	if g.SelectAt(-500, -500) || g.Selected() != 0 {
		t.Error("selecting empty space kept a selection")
	}
}

func TestGame_TelemetryOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, 15)
	cfg.Telemetry.StatsWindow = 1
	g := newTestGame(t, cfg, Options{Seed: 4, OutputDir: dir})

	ticks := int32(2/cfg.Physics.DT) + 1
	g.Run(context.Background(), ticks)
	if err := g.WriteReport(); err != nil {
		t.Fatal(err)
	}
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "report.json", "hall_of_fame.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := countLines(data); lines != 3 {
		t.Errorf("telemetry.csv has %d lines, want header + 2 windows", lines)
	}
}

func countLines(data []byte) int {
	n := 0
	for _, b := range data {
		if b == '\n' {
			n++
		}
	}
	return n
}

func TestGame_PlaceAndTemperament(t *testing.T) {
	cfg := testConfig(t, 3)
	cfg.Watcher.PodiumThreshold = 10
	cfg.Watcher.PodiumPlaces = 2
	g := newTestGame(t, cfg, Options{Seed: 5})

	g.agents[1].Energy.Value = cfg.Survivor.EnergyMax
	g.agents[0].Energy.Value = 10
	g.agents[2].Energy.Value = 20
	g.observe()

	if got := g.Place(2); got != 1 {
		t.Errorf("Place(2) = %d, want 1", got)
	}
	if got := g.Place(3); got != 2 {
		t.Errorf("Place(3) = %d, want 2", got)
	}
	if got := g.Place(1); got != 0 {
		t.Errorf("Place(1) = %d, want 0 (off the podium)", got)
	}

	if got := g.Temperament(cfg.Survivor.AudacityMax); got == "" {
		t.Error("empty temperament")
	}
}
