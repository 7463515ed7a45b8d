package ui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input for one frame.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.game.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyComma) {
		a.game.Slower()
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		a.game.Faster()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.controls.Toggle()
	}

	if key := rl.GetKeyPressed(); key != 0 {
		if id, on, ok := a.overlays.HandleKeyPress(key); ok {
			slog.Debug("overlay toggled", "overlay", id, "enabled", on)
		}
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.game.Select(0)
		a.following = false
	}
	if rl.IsKeyPressed(rl.KeyF) && a.game.Selected() != 0 {
		a.following = !a.following
	}
	if rl.IsKeyPressed(rl.KeyF12) {
		if err := a.game.WriteReport(); err != nil {
			slog.Error("failed to write report", "error", err)
		}
	}

	a.handleCameraInput()
	a.handleClick()
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == a.screenW && h == a.screenH {
		return
	}
	a.layout(w, h)
}

// handleCameraInput processes camera pan/zoom controls.
func (a *App) handleCameraInput() {
	const panSpeed = 8

	if rl.IsKeyDown(rl.KeyRight) {
		a.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		a.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.camera.Pan(0, -panSpeed)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		a.camera.Pan(-d.X, -d.Y)
		a.following = false
	}

	// Zoom toward/away from the cursor
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		m := rl.GetMousePosition()
		a.camera.ZoomAt(1+wheel*0.1, m.X, m.Y)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.camera.ZoomAt(1.25, float32(a.screenW)/2, float32(a.screenH)/2)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.camera.ZoomAt(0.8, float32(a.screenW)/2, float32(a.screenH)/2)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		a.camera.Reset()
		a.following = false
	}
}

// handleClick routes a left click to the panels first, then to the world.
func (a *App) handleClick() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	m := rl.GetMousePosition()
	mx, my := int32(m.X), int32(m.Y)

	if consumed, closed := a.inspector.HandleClick(mx, my); consumed {
		if closed {
			a.game.Select(0)
			a.following = false
		}
		return
	}
	if a.controls.Contains(mx, my) {
		return
	}
	if a.overlays.IsEnabled(OverlayEnergy) && a.energy.Len() > 0 && a.energy.HandleClick(mx, my) {
		return
	}

	wx, wy := a.camera.ScreenToWorld(m.X, m.Y)
	if !a.game.SelectAt(float64(wx), float64(wy)) {
		a.following = false
	}
}
