package timers

import "testing"

func TestCheckFirstCallRecords(t *testing.T) {
	var r Registry
	if r.Check(3, "a", 1) {
		t.Error("first Check returned true, want false")
	}
	if !r.Has("a") {
		t.Error("first Check did not record the timer")
	}
	if e, _ := r.Elapsed(3, "a"); e != 0 {
		t.Errorf("elapsed right after first Check = %v, want 0", e)
	}
}

func TestCheckFiresAndResets(t *testing.T) {
	tests := []struct {
		name string
		d    float64
	}{
		{"short", 0.25},
		{"one second", 1},
		{"long", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Registry
			r.Check(0, "x", tt.d)

			if r.Check(tt.d/2, "x", tt.d) {
				t.Errorf("fired at half duration")
			}
			if !r.Check(tt.d, "x", tt.d) {
				t.Errorf("did not fire at exactly d=%v", tt.d)
			}
			// Reference was reset: an immediate re-check must be false.
			if r.Check(tt.d, "x", tt.d) {
				t.Errorf("fired again immediately after a true result")
			}
			if !r.Check(2*tt.d+0.001, "x", tt.d) {
				t.Errorf("did not fire one period after reset")
			}
		})
	}
}

func TestCheckFalseHasNoSideEffect(t *testing.T) {
	var r Registry
	r.Check(0, "x", 1)
	for _, now := range []float64{0.1, 0.5, 0.9} {
		r.Check(now, "x", 1)
	}
	if e, _ := r.Elapsed(0.95, "x"); e != 0.95 {
		t.Errorf("elapsed = %v, want 0.95 (false results must not reset)", e)
	}
}

func TestCooldown(t *testing.T) {
	var r Registry
	if !r.Cooldown(0, "hit", 2) {
		t.Error("unseen cooldown should be free")
	}
	if r.Cooldown(1.5, "hit", 2) {
		t.Error("cooldown free before it expired")
	}
	if !r.Cooldown(2, "hit", 2) {
		t.Error("cooldown not free after expiry")
	}
}

func TestStartDeleteElapsed(t *testing.T) {
	var r Registry
	if _, ok := r.Elapsed(1, "x"); ok {
		t.Error("Elapsed reported an unstarted timer")
	}
	r.Start(2, "x")
	if e, ok := r.Elapsed(5, "x"); !ok || e != 3 {
		t.Errorf("Elapsed = (%v, %v), want (3, true)", e, ok)
	}
	r.Delete("x")
	if r.Has("x") {
		t.Error("Delete left the timer in place")
	}
	if r.Check(10, "x", 0) {
		t.Error("Check after Delete should behave like a first call")
	}
}

func TestSimClock(t *testing.T) {
	c := NewSimClock()
	for i := 0; i < 4; i++ {
		c.Advance(0.25)
	}
	if c.Now() != 1 {
		t.Errorf("Now = %v, want 1", c.Now())
	}
	c.Set(7)
	if c.Now() != 7 {
		t.Errorf("Now after Set = %v, want 7", c.Now())
	}
}
