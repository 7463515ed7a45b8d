package components

// Position represents an entity's world position.
type Position struct {
	X, Y float64
}

// Motion holds a Survivor's heading and its current speed in units per tick.
// DX, DY is a unit vector, or zero to hold position.
type Motion struct {
	DX, DY float64
	Speed  float64 `inspect:"label,fmt:%.2f"`
}
