package telemetry

import (
	"encoding/json"
	"log/slog"
	"slices"
)

// HallEntry is a fallen Survivor worth remembering.
type HallEntry struct {
	EntityID        uint32  `json:"id"`
	Name            string  `json:"name"`
	SurvivalTimeSec float64 `json:"survival_sec"`
	Hits            int     `json:"hits"`
	Meals           int     `json:"meals"`
	EnergyRecovered float64 `json:"energy_recovered"`
	PeakEnergy      float64 `json:"peak_energy"`
}

// HallOfFame keeps the longest-lived fallen Survivors, best first.
type HallOfFame struct {
	entries []HallEntry
	maxSize int
}

// NewHallOfFame creates a hall holding at most maxSize entries.
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize < 1 {
		maxSize = 10
	}
	return &HallOfFame{entries: make([]HallEntry, 0, maxSize), maxSize: maxSize}
}

// Consider evaluates a fallen Survivor for entry.
// Returns true if it was added.
func (hof *HallOfFame) Consider(id uint32, stats *LifetimeStats) bool {
	if stats == nil {
		return false
	}
	entry := HallEntry{
		EntityID:        id,
		Name:            stats.Name,
		SurvivalTimeSec: stats.SurvivalTimeSec,
		Hits:            stats.Hits,
		Meals:           stats.Meals,
		EnergyRecovered: stats.EnergyRecovered,
		PeakEnergy:      stats.PeakEnergy,
	}

	// Ties keep the earlier entrant ahead.
	pos, _ := slices.BinarySearchFunc(hof.entries, entry, func(e, target HallEntry) int {
		if e.SurvivalTimeSec >= target.SurvivalTimeSec {
			return -1
		}
		return 1
	})
	if pos >= hof.maxSize {
		return false
	}
	hof.entries = slices.Insert(hof.entries, pos, entry)
	if len(hof.entries) > hof.maxSize {
		hof.entries = hof.entries[:hof.maxSize]
	}
	return true
}

// Entries returns the hall, longest-lived first.
func (hof *HallOfFame) Entries() []HallEntry {
	return hof.entries
}

// Len returns the number of entries.
func (hof *HallOfFame) Len() int {
	return len(hof.entries)
}

// MarshalJSON serializes the entries.
func (hof *HallOfFame) MarshalJSON() ([]byte, error) {
	return json.Marshal(hof.entries)
}

// LogStats logs a one-line summary of the hall.
func (hof *HallOfFame) LogStats() {
	if len(hof.entries) == 0 {
		return
	}
	best := hof.entries[0]
	slog.Info("hall_of_fame",
		"entries", len(hof.entries),
		"best", best.Name,
		"best_survival_sec", best.SurvivalTimeSec,
	)
}
