package systems

import "testing"

func testDanger(t *testing.T) *Danger {
	t.Helper()
	return NewDanger(testConfig(t).Danger, Vec{640, 360})
}

func TestDangerAttackCycle(t *testing.T) {
	d := testDanger(t)
	target := Vec{700, 360}

	if !d.Attack(0, target) {
		t.Fatal("Attack from idle did not start")
	}
	if d.Attack(0.05, Vec{0, 0}) {
		t.Error("second Attack while attacking should be ignored")
	}
	if d.Target != target {
		t.Errorf("target = %v, want first one %v", d.Target, target)
	}

	steps := []struct {
		now   float64
		phase Phase
	}{
		{0.1, PhaseAttacking},
		{0.19, PhaseAttacking},
		{0.2, PhaseReturning},
		{0.65, PhaseReturning},
	}
	for _, s := range steps {
		if d.Update(s.now, 1) {
			t.Fatalf("connected early at %v", s.now)
		}
		if d.Phase != s.phase {
			t.Errorf("phase at %v = %v, want %v", s.now, d.Phase, s.phase)
		}
	}
	if d.Pos == d.Anchor {
		t.Error("danger did not move during the attack")
	}

	if !d.Update(0.75, 1) {
		t.Fatal("attack did not connect after the return")
	}
	if d.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", d.Phase)
	}
	if d.Pos != d.Anchor {
		t.Errorf("pos = %v, want snapped to anchor %v", d.Pos, d.Anchor)
	}
	if d.Hits != 1 || d.Rage != 1 || d.RotationSpeed != 1 {
		t.Errorf("hits=%d rage=%v rotation=%v, want 1/1/1", d.Hits, d.Rage, d.RotationSpeed)
	}
}

func TestDangerStepNoOvershoot(t *testing.T) {
	d := testDanger(t)
	target := d.Anchor.Add(Vec{3, 0}) // closer than one attack step
	d.Attack(0, target)
	d.Update(0.1, 1)
	if d.Pos != target {
		t.Errorf("pos = %v, want exactly %v", d.Pos, target)
	}
}

func TestDangerRageDecay(t *testing.T) {
	d := testDanger(t)
	d.Attack(0, Vec{700, 360})
	d.Update(0.2, 1)
	d.Update(0.75, 1) // connect: rage timer starts at 0.75

	d.Update(2.5, 1)
	if d.Rage != 1 {
		t.Errorf("rage decayed early: %v", d.Rage)
	}
	d.Update(2.75, 1)
	if d.Rage != 0 || d.RotationSpeed != 0 {
		t.Errorf("rage=%v rotation=%v after cooldown, want 0/0", d.Rage, d.RotationSpeed)
	}
	d.Update(10, 1)
	if d.Rage != 0 {
		t.Errorf("rage went negative: %v", d.Rage)
	}
}

func TestDangerRageCooldownScale(t *testing.T) {
	d := testDanger(t)
	d.Attack(0, Vec{700, 360})
	d.Update(0.2, 1)
	d.Update(0.75, 1)

	// A quarter of the period under the hot climate coefficient.
	d.Update(1.25, 0.25)
	if d.Rage != 0 {
		t.Errorf("rage = %v, want decayed after scaled cooldown", d.Rage)
	}
}

func TestDangerRotationCapped(t *testing.T) {
	d := testDanger(t)
	now := 0.0
	for i := 0; i < 40; i++ {
		d.Attack(now, Vec{700, 360})
		d.Update(now+0.3, 1)
		d.Update(now+0.9, 1)
		now += 1
	}
	if d.RotationSpeed != d.cfg.RotationSpeedMax {
		t.Errorf("rotation = %v, want capped at %v", d.RotationSpeed, d.cfg.RotationSpeedMax)
	}
	if d.Hits != 40 {
		t.Errorf("hits = %d, want 40", d.Hits)
	}
}

func TestDangerCanDamageCooldown(t *testing.T) {
	d := testDanger(t)
	tests := []struct {
		now  float64
		want bool
	}{
		{0, true}, // first contact hits immediately
		{1, false},
		{1.99, false},
		{2, true},
		{3, false},
	}
	for _, tt := range tests {
		if got := d.CanDamage(tt.now); got != tt.want {
			t.Errorf("CanDamage(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}
