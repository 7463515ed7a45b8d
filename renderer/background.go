package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/camera"
)

// BackgroundRenderer fills the window with the climate colour and marks
// the world seam once the view is zoomed in enough to lose track of it.
type BackgroundRenderer struct {
	cam *camera.Camera
}

// NewBackgroundRenderer creates a background renderer for cam.
func NewBackgroundRenderer(cam *camera.Camera) *BackgroundRenderer {
	return &BackgroundRenderer{cam: cam}
}

// Draw clears to bg.
func (b *BackgroundRenderer) Draw(bg rl.Color) {
	rl.ClearBackground(bg)
	if b.cam.Zoom <= b.cam.MinZoom*1.01 {
		return
	}

	seam := Lerp(bg, rl.Black, 0.12)
	sx, sy := b.cam.WorldToScreen(0, 0)
	if sx >= 0 && sx <= b.cam.ViewportW {
		rl.DrawLineV(rl.Vector2{X: sx, Y: 0}, rl.Vector2{X: sx, Y: b.cam.ViewportH}, seam)
	}
	if sy >= 0 && sy <= b.cam.ViewportH {
		rl.DrawLineV(rl.Vector2{X: 0, Y: sy}, rl.Vector2{X: b.cam.ViewportW, Y: sy}, seam)
	}
}
