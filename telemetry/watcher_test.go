package telemetry

import (
	"testing"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
)

func testWatcher(initial int) *Watcher {
	return NewWatcher(config.WatcherConfig{PodiumThreshold: 3, PodiumPlaces: 2}, initial)
}

func residents(energies ...float64) []Resident {
	out := make([]Resident, len(energies))
	for i, e := range energies {
		out[i] = Resident{ID: uint32(i + 1), Name: string(rune('A' + i)), Energy: e}
	}
	return out
}

func TestWatcher_CensusPriority(t *testing.T) {
	w := testWatcher(6)
	living := []Resident{
		{ID: 1, Critical: true, Mode: components.ModeFlee},
		{ID: 2, Mode: components.ModeFlee, Following: true},
		{ID: 3, Following: true, Mode: components.ModeEating},
		{ID: 4, Mode: components.ModeEating},
		{ID: 5, Mode: components.ModeRush},
	}

	c := w.Observe(living).Census
	want := Census{Living: 5, Dead: 1, Critical: 1, InDanger: 1, Following: 1, Eating: 1, Rushing: 1}
	if c != want {
		t.Errorf("census = %+v, want %+v", c, want)
	}
}

func TestWatcher_PodiumOpensOnce(t *testing.T) {
	w := testWatcher(10)

	if obs := w.Observe(residents(1, 2, 3, 4)); len(obs.Podium) != 0 || obs.PodiumOpened {
		t.Fatalf("podium open above threshold: %+v", obs)
	}

	obs := w.Observe(residents(5, 9, 9))
	if !obs.PodiumOpened {
		t.Error("podium did not open at the threshold")
	}
	if len(obs.Podium) != 2 {
		t.Fatalf("podium has %d places, want 2", len(obs.Podium))
	}
	// Equal energy keeps creation order.
	if obs.Podium[0].ID != 2 || obs.Podium[1].ID != 3 {
		t.Errorf("podium order = %+v", obs.Podium)
	}
	if first, ok := obs.First(); !ok || first.Place != 1 {
		t.Errorf("First() = %+v, %v", first, ok)
	}

	if w.Observe(residents(5, 9, 9)).PodiumOpened {
		t.Error("podium reported opening twice")
	}
}

func TestWatcher_Winner(t *testing.T) {
	tests := []struct {
		name     string
		ticks    [][]Resident
		wantID   uint32
		wantWins bool
	}{
		{
			name:     "last one standing",
			ticks:    [][]Resident{residents(3, 8), residents(3)},
			wantID:   1,
			wantWins: true,
		},
		{
			name:     "previous leader wins when all fall together",
			ticks:    [][]Resident{residents(3, 8), nil},
			wantID:   2,
			wantWins: true,
		},
		{
			name:     "no podium and nobody left",
			ticks:    [][]Resident{nil},
			wantWins: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWatcher(2)
			var obs Observation
			for _, living := range tt.ticks {
				obs = w.Observe(living)
			}
			winner, ok := w.Winner()
			if ok != tt.wantWins {
				t.Fatalf("winner declared = %v, want %v", ok, tt.wantWins)
			}
			if ok && winner.ID != tt.wantID {
				t.Errorf("winner = %d, want %d", winner.ID, tt.wantID)
			}
			if obs.WinnerIsNew != tt.wantWins {
				t.Errorf("WinnerIsNew = %v", obs.WinnerIsNew)
			}
		})
	}
}

func TestWatcher_WinnerIsSticky(t *testing.T) {
	w := testWatcher(2)
	w.Observe(residents(4))
	obs := w.Observe(nil)
	if obs.WinnerIsNew {
		t.Error("winner announced twice")
	}
	if obs.Winner == nil || obs.Winner.ID != 1 {
		t.Errorf("winner = %+v, want ID 1", obs.Winner)
	}
}
