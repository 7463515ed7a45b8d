package systems

import (
	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/traits"
)

// HazardHit records one Survivor caught in the Danger's field.
type HazardHit struct {
	Index   int
	Damaged bool
}

// DetectHazard makes every mobile Survivor that senses the Danger flee from
// it. Candidates are visited in agent order, so the first one encountered is
// the one the Danger attacks.
func (p *InteractionPass) DetectHazard(agents []Agent, danger *Danger, now float64, cfg *config.SurvivorConfig) []HazardHit {
	p.hits = p.hits[:0]
	p.buf = p.grid.QueryRadiusInto(p.buf[:0], danger.Pos.X, danger.Pos.Y, p.maxSensory)

	for _, n := range p.buf {
		a := agents[n.Index]
		st := a.State
		if !st.Mobile() || n.DistSq >= a.Senses.SensoryRadius*a.Senses.SensoryRadius {
			continue
		}

		if st.Mode != components.ModeFlee {
			st.Mode = components.ModeFlee
			st.Timers.Start(now, timerFlee)
		}

		hit := HazardHit{Index: n.Index}
		if danger.CanDamage(now) {
			loseEnergy(a.Energy, st, danger.Damage())
			st.Stats.Hits++
			hit.Damaged = true
		}

		st.SecurityDistance = traits.SecurityDistance(a.Traits.Audacity, danger.Edge, cfg.SecurityEdgeFactor, cfg.SecurityScale)
		st.MemoryDuration = traits.MemoryDuration(a.Energy.Value, cfg.MemoryEnergyRatio)
		st.DejaVu = true
		st.Timers.Start(now, timerSpatialMemory)

		danger.Attack(now, a.Vec())

		// Neighbor deltas point from the Danger to the Survivor.
		if dir, ok := (Vec{n.DX, n.DY}).Normalize(); ok {
			a.Motion.DX, a.Motion.DY = dir.X, dir.Y
		}
		p.hits = append(p.hits, hit)
	}
	return p.hits
}

// PropagateFollow lets calm Survivors near a fleeing one copy its heading.
// Each follower takes the first fleeing Survivor in agent order. The
// borrowed heading lasts one step; call ReturnHeadings after the step.
func (p *InteractionPass) PropagateFollow(agents []Agent) int {
	for _, a := range agents {
		a.State.Following = false
	}
	p.borrowed = p.borrowed[:0]

	followers := 0
	for i, leader := range agents {
		if !leader.State.Fleeing() || !leader.State.Mobile() {
			continue
		}
		reach := leader.Senses.SensoryRadius + p.maxSensory
		p.buf = p.grid.QueryRadiusInto(p.buf[:0], leader.Pos.X, leader.Pos.Y, reach)

		for _, n := range p.buf {
			if n.Index == i {
				continue
			}
			f := agents[n.Index]
			st := f.State
			if st.Following || !st.Mobile() || st.Fleeing() || st.DejaVu {
				continue
			}
			r := f.Senses.SensoryRadius + leader.Senses.SensoryRadius
			if n.DistSq >= r*r {
				continue
			}
			st.Following = true
			p.borrowed = append(p.borrowed, borrowedHeading{
				index: n.Index,
				ownDX: f.Motion.DX, ownDY: f.Motion.DY,
				dx: leader.Motion.DX, dy: leader.Motion.DY,
			})
			f.Motion.DX, f.Motion.DY = leader.Motion.DX, leader.Motion.DY
			followers++
		}
	}
	return followers
}

// borrowedHeading is a follower's heading before it copied a leader's.
type borrowedHeading struct {
	index        int
	ownDX, ownDY float64
	dx, dy       float64
}

// ReturnHeadings gives followers back the heading they had before
// PropagateFollow. A follower whose step already turned it away from the
// borrowed heading keeps its new one.
func (p *InteractionPass) ReturnHeadings(agents []Agent) {
	for _, b := range p.borrowed {
		if b.index >= len(agents) {
			continue
		}
		m := agents[b.index].Motion
		if m.DX == b.dx && m.DY == b.dy {
			m.DX, m.DY = b.ownDX, b.ownDY
		}
	}
	p.borrowed = p.borrowed[:0]
}

// CheckMemory turns back Survivors that remember the Danger and wander
// inside their security distance.
func (p *InteractionPass) CheckMemory(agents []Agent, danger *Danger, now float64) int {
	turned := 0
	for _, a := range agents {
		st := a.State
		if !st.Mobile() || !st.DejaVu || st.Mode == components.ModeFlee || st.Mode == components.ModeDejaVuFlee {
			continue
		}
		if Distance(a.Vec(), danger.Pos) >= st.SecurityDistance+danger.Edge {
			continue
		}
		a.Motion.DX, a.Motion.DY = -a.Motion.DX, -a.Motion.DY
		st.Mode = components.ModeDejaVuFlee
		st.Timers.Start(now, timerDejaVuFlee)
		turned++
	}
	return turned
}
