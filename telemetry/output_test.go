package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	// Every method is a no-op on nil.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteEvents([]Event{{Type: EventHit}}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManager_HeaderWrittenOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: int32(i), Alive: 10 - i}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteEvents([]Event{
		NewHitEvent(1, 0.1, 4, "Bolar", 1),
		NewWorldEvent(EventClimateChange, 2, 0.2, "cold"),
	}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteEvents([]Event{NewSurvivorEvent(EventStarved, 3, 0.3, 4, "Bolar")}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkWinner, Tick: 9, Description: "Bolar wins"}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "telemetry.csv"))
	if len(lines) != 4 {
		t.Errorf("telemetry.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end") {
		t.Errorf("telemetry header = %q", lines[0])
	}

	events := readLines(t, filepath.Join(dir, "events.csv"))
	if len(events) != 4 || !strings.HasPrefix(events[0], "type,") {
		t.Errorf("events.csv = %q", events)
	}
	if !strings.HasPrefix(events[3], "starved,") {
		t.Errorf("last event = %q", events[3])
	}

	if b := readLines(t, filepath.Join(dir, "bookmarks.csv")); len(b) != 2 {
		t.Errorf("bookmarks.csv = %q", b)
	}
}

func TestOutputManager_Report(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	r := Report{Seed: 7, Ticks: 600, Initial: 10, Remaining: 1, Winner: &WinnerReport{ID: 3, Name: "Kiras"}}
	if err := om.WriteReport(r); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Seed != 7 || got.Winner == nil || got.Winner.Name != "Kiras" {
		t.Errorf("report = %+v", got)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
