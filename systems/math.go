package systems

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec is a 2D point or direction in world units.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return floats.Norm([]float64{v.X, v.Y}, 2)
}

// Normalize returns v scaled to unit length.
// A zero vector yields ok=false and a zero result, which callers treat as
// "hold position".
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// lerp interpolates linearly between a and b by t in [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*clampFloat(t, 0, 1)
}
