package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/camera"
	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/telemetry"
)

// eatingPulse is the body radius multiplier on the eating beat.
const eatingPulse = 1.4

// SurvivorRenderer draws Survivor bodies, sensory fields and labels.
type SurvivorRenderer struct {
	cam *camera.Camera
}

// NewSurvivorRenderer creates a survivor renderer for cam.
func NewSurvivorRenderer(cam *camera.Camera) *SurvivorRenderer {
	return &SurvivorRenderer{cam: cam}
}

// Draw renders one Survivor. now drives the eating pulse.
func (r *SurvivorRenderer) Draw(s telemetry.SurvivorState, bg rl.Color, layers Layers, selected bool, now float64) {
	radius := float32(s.Radius)
	if s.Mode == components.ModeEating && math.Mod(now, 0.5) < 0.25 {
		radius *= eatingPulse
	}
	reach := max(radius, float32(s.SensoryRadius))
	body := SurvivorColor(s, bg)
	for _, p := range r.cam.Copies(float32(s.X), float32(s.Y), reach) {
		if !onScreen(r.cam, p, r.cam.Scale(reach)) {
			continue
		}
		c := rl.Vector2{X: p.X, Y: p.Y}

		if layers.Sensory && mobile(s.Mode) {
			col, thick := FieldColor(s)
			rr := r.cam.Scale(float32(s.SensoryRadius))
			rl.DrawRing(c, rr-thick, rr, 0, 360, 48, col)
		}

		rl.DrawCircleV(c, max(r.cam.Scale(radius), 1), body)

		if s.OnPodium {
			col := ColorPodium
			if s.IsFirst {
				col = ColorFirst
			}
			rl.DrawCircleLinesV(c, r.cam.Scale(radius)+3, col)
		}
		if selected {
			rl.DrawCircleLinesV(c, r.cam.Scale(radius)+6, ColorSelected)
		}
		if layers.Names || selected || s.IsFirst {
			w := rl.MeasureText(s.Name, 10)
			rl.DrawText(s.Name, int32(c.X)-w/2, int32(c.Y+r.cam.Scale(radius))+4, 10, rl.DarkGray)
		}
	}
}

// DrawLinks draws the debug lines from a Survivor to the Danger it flees
// or the food it is heading for.
func (r *SurvivorRenderer) DrawLinks(s telemetry.SurvivorState, d telemetry.DangerState, f telemetry.FoodState, layers Layers) {
	from := r.screen(s.X, s.Y)
	switch {
	case layers.DangerLines && (s.Mode == components.ModeFlee || s.Mode == components.ModeDejaVuFlee):
		rl.DrawLineV(from, r.screen(d.X, d.Y), rl.Red)
	case layers.FoodLines && (s.Mode == components.ModeRush || s.Mode == components.ModeEating):
		rl.DrawLineV(from, r.screen(f.X, f.Y), rl.Blue)
	}
}

// DrawMemory draws the security distance a Survivor keeps from the
// remembered Danger.
func (r *SurvivorRenderer) DrawMemory(s telemetry.SurvivorState, d telemetry.DangerState) {
	if !s.DejaVu || s.SecurityDistance <= 0 {
		return
	}
	col := ColorSurvivorFollow
	col.A = 70
	rl.DrawCircleLinesV(r.screen(d.X, d.Y), r.cam.Scale(float32(s.SecurityDistance)), col)
	rl.DrawLineV(r.screen(s.X, s.Y), r.screen(d.X, d.Y), col)
}

func onScreen(cam *camera.Camera, p camera.Point, px float32) bool {
	return p.X+px >= 0 && p.Y+px >= 0 && p.X-px <= cam.ViewportW && p.Y-px <= cam.ViewportH
}

func (r *SurvivorRenderer) screen(x, y float64) rl.Vector2 {
	sx, sy := r.cam.WorldToScreen(float32(x), float32(y))
	return rl.Vector2{X: sx, Y: sy}
}
