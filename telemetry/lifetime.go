package telemetry

import "github.com/pthm-cable/survivors/components"

// LifetimeStats tracks per-Survivor statistics over its lifetime.
type LifetimeStats struct {
	Name            string
	BornAt          float64
	StarvedAt       float64 // 0 while alive
	SurvivalTimeSec float64

	Hits            int
	Meals           int
	EnergyLost      float64
	EnergyRecovered float64
	PeakEnergy      float64
}

// LifetimeTracker manages per-Survivor lifetime statistics.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new Survivor.
func (lt *LifetimeTracker) Register(id uint32, name string, now, energy float64) {
	lt.stats[id] = &LifetimeStats{Name: name, BornAt: now, PeakEnergy: energy}
}

// Get returns the lifetime stats for a Survivor, or nil if not found.
func (lt *LifetimeTracker) Get(id uint32) *LifetimeStats {
	return lt.stats[id]
}

// Remove removes a Survivor's stats and returns them.
func (lt *LifetimeTracker) Remove(id uint32) *LifetimeStats {
	stats := lt.stats[id]
	delete(lt.stats, id)
	return stats
}

// Sync copies the counters a Survivor keeps on itself and tracks peak energy.
func (lt *LifetimeTracker) Sync(id uint32, st components.Stats, energy float64) {
	s := lt.stats[id]
	if s == nil {
		return
	}
	s.Hits = st.Hits
	s.Meals = st.Meals
	s.EnergyLost = st.EnergyLost
	s.EnergyRecovered = st.EnergyRecovered
	if energy > s.PeakEnergy {
		s.PeakEnergy = energy
	}
}

// RecordStarved marks the moment a Survivor ran out of energy. Its survival
// time stops there.
func (lt *LifetimeTracker) RecordStarved(id uint32, now float64) {
	if s := lt.stats[id]; s != nil && s.StarvedAt == 0 {
		s.StarvedAt = now
		s.SurvivalTimeSec = now - s.BornAt
	}
}

// UpdateSurvivalTime updates the survival time of a living Survivor.
func (lt *LifetimeTracker) UpdateSurvivalTime(id uint32, now float64) {
	if s := lt.stats[id]; s != nil && s.StarvedAt == 0 {
		s.SurvivalTimeSec = now - s.BornAt
	}
}

// All returns all tracked stats.
func (lt *LifetimeTracker) All() map[uint32]*LifetimeStats {
	return lt.stats
}

// Count returns the number of tracked Survivors.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
