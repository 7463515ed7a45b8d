package renderer

import (
	"github.com/pthm-cable/survivors/camera"
	"github.com/pthm-cable/survivors/telemetry"
)

// Layers selects the optional world overlays.
type Layers struct {
	Sensory     bool // sensory field rings
	Memory      bool // security distance of Survivors that remember the Danger
	Scent       bool // food scent field
	DangerLines bool // Survivor to Danger while fleeing
	FoodLines   bool // Survivor to food while rushing or eating
	Names       bool // name under every Survivor
}

// WorldRenderer draws a whole snapshot through one camera.
type WorldRenderer struct {
	Camera *camera.Camera

	background *BackgroundRenderer
	food       *FoodRenderer
	danger     *DangerRenderer
	survivors  *SurvivorRenderer
	particles  *ParticleRenderer
}

// NewWorldRenderer creates a world renderer for cam.
func NewWorldRenderer(cam *camera.Camera) *WorldRenderer {
	return &WorldRenderer{
		Camera:     cam,
		background: NewBackgroundRenderer(cam),
		food:       NewFoodRenderer(cam),
		danger:     NewDangerRenderer(cam),
		survivors:  NewSurvivorRenderer(cam),
		particles:  NewParticleRenderer(cam),
	}
}

// Draw renders s. frameDT is the wall-clock frame time used by effects.
// Must be called between rl.BeginDrawing and rl.EndDrawing.
func (w *WorldRenderer) Draw(s *telemetry.Snapshot, layers Layers, selected uint32, frameDT float32) {
	bg := Background(s)
	w.background.Draw(bg)

	w.particles.Observe(s)
	w.particles.Update(frameDT)

	w.food.Draw(s.Food, layers.Scent)

	if layers.Memory {
		for _, sv := range s.Survivors {
			w.survivors.DrawMemory(sv, s.Danger)
		}
	}
	if layers.DangerLines || layers.FoodLines {
		for _, sv := range s.Survivors {
			w.survivors.DrawLinks(sv, s.Danger, s.Food, layers)
		}
	}

	for _, sv := range s.Survivors {
		w.survivors.Draw(sv, bg, layers, sv.ID == selected, s.Time)
	}

	w.danger.Draw(s.Danger)
	w.particles.Draw()
}

// Particles returns the live effect count.
func (w *WorldRenderer) Particles() int { return w.particles.Len() }
