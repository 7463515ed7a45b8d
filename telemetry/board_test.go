package telemetry

import (
	"testing"
	"time"

	"github.com/pthm-cable/survivors/components"
)

func TestBoard_LatestValueFirstSeenOrder(t *testing.T) {
	b := NewBoard()
	b.Add("alive", 10)
	b.Add("temperature", 14.256)
	b.Add("alive", 9)
	b.Add("mode", components.ModeFlee)
	b.Add("tick", 1500*time.Microsecond)

	want := []BoardLine{
		{"alive", "9"},
		{"temperature", "14.26"},
		{"mode", "Flee"},
		{"tick", "2ms"},
	}
	got := b.Lines()
	if len(got) != len(want) {
		t.Fatalf("lines = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	b.Reset()
	if _, ok := b.Get("alive"); ok || len(b.Lines()) != 0 {
		t.Error("Reset left values behind")
	}
}

var _ Sink = (*Board)(nil)
var _ Sink = Discard{}
