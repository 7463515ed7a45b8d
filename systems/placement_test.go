package systems

import (
	"errors"
	"testing"
)

func TestPlaceRespectsConstraint(t *testing.T) {
	rng := testRng()
	b := WorldBounds(1280, 720)
	danger := Vec{640, 360}

	for i := 0; i < 200; i++ {
		v, err := Place(rng, b, FarFrom(danger, 300), 10000)
		if err != nil {
			t.Fatalf("Place #%d: %v", i, err)
		}
		if d := Distance(v, danger); d < 300 {
			t.Errorf("placed %v at %v from danger, want >= 300", v, d)
		}
		if v.X < b.MinX || v.X > b.MaxX || v.Y < b.MinY || v.Y > b.MaxY {
			t.Errorf("placed %v outside %+v", v, b)
		}
	}
}

func TestPlaceFailure(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		ok   Constraint
	}{
		{"impossible constraint", WorldBounds(100, 100), FarFrom(Vec{50, 50}, 1000)},
		{"empty bounds", WorldBounds(100, 100).Inset(60), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Place(testRng(), tt.b, tt.ok, 50)
			if !errors.Is(err, ErrNoPlacement) {
				t.Errorf("err = %v, want ErrNoPlacement", err)
			}
		})
	}
}

func TestPlaceDeterministic(t *testing.T) {
	b := WorldBounds(500, 500)
	a, _ := Place(testRng(), b, nil, 1)
	c, _ := Place(testRng(), b, nil, 1)
	if a != c {
		t.Errorf("same seed placed %v and %v", a, c)
	}
}
