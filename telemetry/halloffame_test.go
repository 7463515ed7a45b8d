package telemetry

import (
	"encoding/json"
	"testing"

	"github.com/pthm-cable/survivors/components"
)

func TestHallOfFame_KeepsLongestLived(t *testing.T) {
	hof := NewHallOfFame(2)
	add := func(id uint32, survival float64) bool {
		return hof.Consider(id, &LifetimeStats{Name: "s", SurvivalTimeSec: survival})
	}

	add(1, 10)
	add(2, 30)
	add(3, 20)
	if add(4, 5) {
		t.Error("short-lived survivor entered a full hall")
	}
	if hof.Consider(5, nil) {
		t.Error("nil stats entered the hall")
	}

	got := hof.Entries()
	if len(got) != 2 || got[0].EntityID != 2 || got[1].EntityID != 3 {
		t.Errorf("entries = %+v, want ids 2, 3", got)
	}

	// A tie goes behind the existing entry.
	add(6, 30)
	if got := hof.Entries(); got[0].EntityID != 2 || got[1].EntityID != 6 {
		t.Errorf("after tie entries = %+v", got)
	}

	data, err := hof.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded []HallEntry
	if err := json.Unmarshal(data, &decoded); err != nil || len(decoded) != 2 {
		t.Errorf("round trip = %v, %v", decoded, err)
	}
}

func TestLifetimeTracker(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(7, "Tovar", 2, 30)

	lt.Sync(7, components.Stats{Hits: 2, Meals: 1, EnergyRecovered: 12}, 45)
	lt.Sync(7, components.Stats{Hits: 3, Meals: 1, EnergyRecovered: 12}, 20)
	lt.UpdateSurvivalTime(7, 12)

	s := lt.Get(7)
	if s.Hits != 3 || s.PeakEnergy != 45 || s.SurvivalTimeSec != 10 {
		t.Errorf("stats = %+v", s)
	}

	lt.RecordStarved(7, 20)
	lt.UpdateSurvivalTime(7, 25)
	if s.SurvivalTimeSec != 18 {
		t.Errorf("survival after starving = %v, want 18", s.SurvivalTimeSec)
	}

	if removed := lt.Remove(7); removed != s || lt.Count() != 0 {
		t.Error("Remove did not hand back the stats")
	}
	lt.Sync(7, components.Stats{}, 0) // unknown IDs are ignored
}
