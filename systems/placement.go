package systems

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoPlacement is returned when no position satisfied a placement
// constraint within the attempt budget.
var ErrNoPlacement = errors.New("no valid placement")

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// WorldBounds returns the rectangle [0,w]x[0,h].
func WorldBounds(w, h float64) Bounds {
	return Bounds{MaxX: w, MaxY: h}
}

// Inset shrinks b by m on every side.
func (b Bounds) Inset(m float64) Bounds {
	return Bounds{MinX: b.MinX + m, MinY: b.MinY + m, MaxX: b.MaxX - m, MaxY: b.MaxY - m}
}

// Empty reports whether b has no interior.
func (b Bounds) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// Width returns the horizontal extent of b.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Constraint accepts or rejects a candidate position.
type Constraint func(Vec) bool

// FarFrom accepts positions at least d away from p.
func FarFrom(p Vec, d float64) Constraint {
	return func(v Vec) bool { return Distance(v, p) >= d }
}

// Place draws uniform positions inside b until ok accepts one, giving up
// after maxAttempts draws. A nil constraint accepts anything.
func Place(rng *rand.Rand, b Bounds, ok Constraint, maxAttempts int) (Vec, error) {
	if b.Empty() {
		return Vec{}, fmt.Errorf("bounds %+v are empty: %w", b, ErrNoPlacement)
	}
	xs := distuv.Uniform{Min: b.MinX, Max: b.MaxX, Src: rng}
	ys := distuv.Uniform{Min: b.MinY, Max: b.MaxY, Src: rng}

	for attempt := 0; attempt < max(maxAttempts, 1); attempt++ {
		v := Vec{X: xs.Rand(), Y: ys.Rand()}
		if ok == nil || ok(v) {
			return v, nil
		}
	}
	return Vec{}, fmt.Errorf("after %d attempts: %w", maxAttempts, ErrNoPlacement)
}
