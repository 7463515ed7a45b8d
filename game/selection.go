package game

import (
	"cmp"
	"slices"

	"github.com/pthm-cable/survivors/systems"
	"github.com/pthm-cable/survivors/traits"
)

// selectSlack widens the click target beyond a Survivor's body radius.
const selectSlack = 6.0

// SelectAt selects the Survivor closest to the world point (x, y) within
// its body radius plus a small slack. It returns false and clears the
// selection when nobody is there.
func (g *Game) SelectAt(x, y float64) bool {
	click := systems.Vec{X: x, Y: y}
	best := 0.0
	g.selected = 0
	for _, a := range g.agents {
		d := systems.Distance(click, a.Vec())
		if d > a.Senses.Radius+selectSlack {
			continue
		}
		if g.selected == 0 || d < best {
			g.selected = a.Identity.ID
			best = d
		}
	}
	return g.selected != 0
}

// Select selects a Survivor by ID. Zero clears the selection.
func (g *Game) Select(id uint32) {
	if _, ok := g.agentByID(id); ok || id == 0 {
		g.selected = id
	}
}

// Selected returns the selected Survivor's ID, or 0.
func (g *Game) Selected() uint32 { return g.selected }

// Inspect returns the selected Survivor's components for the inspector.
// The pointers are valid until the next Update.
func (g *Game) Inspect() (systems.Agent, bool) {
	if g.selected == 0 {
		return systems.Agent{}, false
	}
	return g.agentByID(g.selected)
}

// agentByID finds a Survivor in the ID-sorted agent slice.
func (g *Game) agentByID(id uint32) (systems.Agent, bool) {
	i, ok := slices.BinarySearchFunc(g.agents, id, func(a systems.Agent, id uint32) int {
		return cmp.Compare(a.Identity.ID, id)
	})
	if !ok {
		return systems.Agent{}, false
	}
	return g.agents[i], true
}

// Temperament names a Survivor's audacity bucket.
func (g *Game) Temperament(audacity float64) string {
	return traits.Temperament(g.ranges, audacity)
}

// Place returns a Survivor's podium place, or 0 when it is off the podium.
func (g *Game) Place(id uint32) int {
	for _, p := range g.obs.Podium {
		if p.ID == id {
			return p.Place
		}
	}
	return 0
}
