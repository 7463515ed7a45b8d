// Package renderer draws world snapshots with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/telemetry"
)

// Palette holds the world colours.
var (
	ColorSurvivor         = rl.Color{R: 76, G: 153, B: 0, A: 255}
	ColorSurvivorFollow   = rl.Color{R: 255, G: 128, B: 0, A: 255}
	ColorSurvivorCritical = rl.Color{R: 34, G: 55, B: 89, A: 255}
	ColorSurvivorEating   = rl.Color{R: 153, G: 51, B: 255, A: 255}
	ColorSurvivorSated    = rl.Color{R: 130, G: 170, B: 90, A: 255}
	ColorSurvivorDanger   = rl.Color{R: 255, G: 0, B: 0, A: 255}

	ColorFood      = rl.Color{R: 0, G: 128, B: 255, A: 255}
	ColorFoodEmpty = rl.Color{R: 0, G: 128, B: 255, A: 60}
	ColorDanger    = rl.Color{R: 255, G: 51, B: 51, A: 128}
	ColorRage      = rl.Color{R: 140, G: 0, B: 0, A: 200}

	ColorFieldIdle = rl.Color{R: 0, G: 0, B: 0, A: 90}
	ColorPodium    = rl.Color{R: 220, G: 180, B: 40, A: 255}
	ColorFirst     = rl.Color{R: 255, G: 215, B: 0, A: 255}
	ColorSelected  = rl.Color{R: 255, G: 255, B: 255, A: 255}
)

// Background converts a snapshot background to a raylib colour.
func Background(s *telemetry.Snapshot) rl.Color {
	return rl.Color{R: s.Background[0], G: s.Background[1], B: s.Background[2], A: 255}
}

// SurvivorColor picks a Survivor's body colour from its state. Immobilized
// and fading Survivors blend from the critical colour into bg.
func SurvivorColor(s telemetry.SurvivorState, bg rl.Color) rl.Color {
	switch {
	case !mobile(s.Mode):
		return Lerp(ColorSurvivorCritical, bg, float32(s.FadeProgress))
	case s.Mode == components.ModeFlee || s.Mode == components.ModeDejaVuFlee:
		return ColorSurvivorDanger
	case s.Following && s.Mode != components.ModeEating:
		return ColorSurvivorFollow
	case s.Critical:
		return ColorSurvivorCritical
	case s.Mode == components.ModeEating:
		return ColorSurvivorEating
	case !s.AbleToEat:
		return ColorSurvivorSated
	default:
		return ColorSurvivor
	}
}

// FieldColor picks the sensory ring colour and thickness.
func FieldColor(s telemetry.SurvivorState) (rl.Color, float32) {
	switch {
	case s.Mode == components.ModeFlee || s.Mode == components.ModeDejaVuFlee:
		return ColorSurvivorDanger, 3
	case s.Following:
		return ColorSurvivorFollow, 3
	case s.Critical:
		return rl.Black, 3
	default:
		return ColorFieldIdle, 1
	}
}

func mobile(m components.Mode) bool {
	return m != components.ModeImmobilized && m != components.ModeFading
}

// Lerp blends a toward b by t in [0, 1], alpha included.
func Lerp(a, b rl.Color, t float32) rl.Color {
	t = max(0, min(t, 1))
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
