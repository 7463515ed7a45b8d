package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/camera"
	"github.com/pthm-cable/survivors/telemetry"
)

// FoodRenderer draws the food square and its scent field.
type FoodRenderer struct {
	cam *camera.Camera
}

// NewFoodRenderer creates a food renderer for cam.
func NewFoodRenderer(cam *camera.Camera) *FoodRenderer {
	return &FoodRenderer{cam: cam}
}

// Draw renders the food. A depleted food waiting to respawn is drawn as a
// faint outline.
func (r *FoodRenderer) Draw(f telemetry.FoodState, showScent bool) {
	edge := float32(f.Edge)
	for _, p := range r.cam.Copies(float32(f.X), float32(f.Y), float32(f.ScentRadius)) {
		size := r.cam.Scale(edge)
		rect := rl.Rectangle{X: p.X - size/2, Y: p.Y - size/2, Width: size, Height: size}
		if f.InCooldown {
			rl.DrawRectangleLinesEx(rect, 1, ColorFoodEmpty)
			continue
		}
		rl.DrawRectangleRec(rect, ColorFood)
		if f.Full {
			rl.DrawRectangleLinesEx(rect, 2, rl.White)
		}

		if showScent {
			r.drawScent(p, r.cam.Scale(float32(f.ScentRadius)))
		}
	}
}

// drawScent shades the scent field with a few soft rings.
func (r *FoodRenderer) drawScent(c camera.Point, radius float32) {
	const steps = 4
	for i := steps; i >= 1; i-- {
		t := float32(i) / steps
		col := ColorFood
		col.A = uint8(12 * (steps - i + 1))
		rl.DrawCircleV(rl.Vector2{X: c.X, Y: c.Y}, radius*t, col)
	}
	rl.DrawCircleLinesV(rl.Vector2{X: c.X, Y: c.Y}, radius, ColorFood)
}
