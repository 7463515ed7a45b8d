package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/camera"
	"github.com/pthm-cable/survivors/telemetry"
)

// DangerRenderer draws the rotating Danger square with a rage glow.
type DangerRenderer struct {
	cam *camera.Camera
}

// NewDangerRenderer creates a danger renderer for cam.
func NewDangerRenderer(cam *camera.Camera) *DangerRenderer {
	return &DangerRenderer{cam: cam}
}

// Draw renders the Danger at its current (possibly lunging) position.
func (r *DangerRenderer) Draw(d telemetry.DangerState) {
	size := r.cam.Scale(float32(d.Edge))
	for _, p := range r.cam.Copies(float32(d.X), float32(d.Y), float32(d.Edge)) {
		if d.Rage > 0 {
			r.drawGlow(p, size, float32(d.Rage))
		}
		rl.DrawRectanglePro(
			rl.Rectangle{X: p.X, Y: p.Y, Width: size, Height: size},
			rl.Vector2{X: size / 2, Y: size / 2},
			float32(d.Angle),
			ColorDanger,
		)
	}
}

// drawGlow draws one halo per rage level.
func (r *DangerRenderer) drawGlow(c camera.Point, size, rage float32) {
	levels := min(int(rage), 8)
	for i := levels; i >= 1; i-- {
		col := ColorRage
		col.A = uint8(18 + 6*(levels-i))
		rl.DrawCircleV(rl.Vector2{X: c.X, Y: c.Y}, size*(0.6+0.15*float32(i)), col)
	}
}
