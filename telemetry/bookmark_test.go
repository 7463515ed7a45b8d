package telemetry

import "testing"

func TestBookmarkDetector_PopulationCrash(t *testing.T) {
	bd := NewBookmarkDetector(10, 0.2)

	for i := 0; i < 3; i++ {
		if got := bd.Check(WindowStats{WindowEndTick: int32(i * 600), Alive: 100}); len(got) != 0 {
			t.Fatalf("stable window %d produced %v", i, got)
		}
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1800, Alive: 70})
	if len(bookmarks) != 1 || bookmarks[0].Type != BookmarkPopulationCrash {
		t.Fatalf("bookmarks = %+v, want one population_crash", bookmarks)
	}

	// The next window compares against 70, not the old peak.
	if got := bd.Check(WindowStats{WindowEndTick: 2400, Alive: 65}); len(got) != 0 {
		t.Errorf("small decline produced %v", got)
	}
}

func TestBookmarkDetector_SmallPopulationsIgnoreSingleLoss(t *testing.T) {
	bd := NewBookmarkDetector(10, 0.2)
	bd.Check(WindowStats{Alive: 3})
	if got := bd.Check(WindowStats{Alive: 2}); len(got) != 0 {
		t.Errorf("losing one of three produced %v", got)
	}
}

func TestBookmarkDetector_HistoryWraps(t *testing.T) {
	bd := NewBookmarkDetector(2, 0.5)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{Alive: 100})
	}
	if got := bd.Check(WindowStats{Alive: 40}); len(got) != 1 {
		t.Errorf("after wrap got %v, want a crash", got)
	}
}

func TestBookmarkDetector_ClimateChanged(t *testing.T) {
	bd := NewBookmarkDetector(10, 0.2)

	if b := bd.ClimateChanged(0, "temperate"); b != nil {
		t.Errorf("first climate produced %+v", b)
	}
	if b := bd.ClimateChanged(10, "temperate"); b != nil {
		t.Errorf("unchanged climate produced %+v", b)
	}
	b := bd.ClimateChanged(20, "cold")
	if b == nil || b.Type != BookmarkClimateChange || b.Tick != 20 {
		t.Errorf("climate change bookmark = %+v", b)
	}
}
