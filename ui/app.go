package ui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/camera"
	"github.com/pthm-cable/survivors/game"
	"github.com/pthm-cable/survivors/inspector"
	"github.com/pthm-cable/survivors/renderer"
	"github.com/pthm-cable/survivors/telemetry"
)

const controlsLegend = "[Space] pause  [,/.] speed  [Tab] controls  [F] follow  [Home] reset view  [Esc] deselect  [F12] save report"

// App is the windowed front-end around a Game. The window must be open
// before NewApp is called.
type App struct {
	game  *game.Game
	board *telemetry.Board

	camera   *camera.Camera
	world    *renderer.WorldRenderer
	overlays *OverlayRegistry

	hud       *HUD
	controls  *ControlsPanel
	boardView *BoardPanel
	perf      *PerfPanel
	podium    *PodiumPanel
	winner    *WinnerPanel
	inspector *inspector.Inspector
	energy    *inspector.EnergyPanel

	screenW, screenH int32
	following        bool
	windows          int
	report           *telemetry.Report
}

// NewApp builds the front-end for g. board is the sink g publishes to,
// or nil when the debug board is unused.
func NewApp(g *game.Game, board *telemetry.Board) *App {
	cfg := g.Config()
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	cam := camera.New(float32(w), float32(h), float32(cfg.Derived.WorldW), float32(cfg.Derived.WorldH))
	a := &App{
		game:      g,
		board:     board,
		camera:    cam,
		world:     renderer.NewWorldRenderer(cam),
		overlays:  NewOverlayRegistry(),
		hud:       NewHUD(),
		controls:  NewControlsPanel(5, 105, 220),
		boardView: NewBoardPanel(5, 105, 260),
		perf:      NewPerfPanel(5, 105),
		podium:    NewPodiumPanel(0, 10, 260),
		winner:    NewWinnerPanel(cfg.Survivor),
		inspector: inspector.NewInspector(w, h),
		energy:    inspector.NewEnergyPanel(w, h, cfg.Survivor.EnergyMax),
	}
	a.layout(w, h)
	return a
}

// layout docks the panels for a screen of w by h pixels.
func (a *App) layout(w, h int32) {
	a.screenW, a.screenH = w, h
	a.camera.Resize(float32(w), float32(h))
	a.inspector.Resize(w, h)
	a.energy.Resize(w, h)
	a.podium.SetPosition(w-inspector.PanelWidth-280, 10)
}

// Run drives the frame loop until the window closes or maxTicks is
// reached (0 = no limit).
func (a *App) Run(maxTicks int32) {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()

		if maxTicks > 0 && a.game.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", a.game.Tick())
			break
		}
	}
}

// Update handles input and advances the game by one frame.
func (a *App) Update() {
	a.handleInput()

	a.game.Update()
	a.game.RecordFrame()

	if stats, n := a.game.LastWindow(); n != a.windows {
		a.windows = n
		a.energy.Record(stats)
	}

	if a.following {
		if sel, ok := a.game.Inspect(); ok {
			a.camera.Follow(float32(sel.Pos.X), float32(sel.Pos.Y))
		} else {
			a.following = false
		}
	}

	if a.game.Over() && a.report == nil {
		r := a.game.Report()
		a.report = &r
	}
}

// Draw renders one frame.
func (a *App) Draw() {
	snap := a.game.Snapshot()

	rl.BeginDrawing()
	a.world.Draw(snap, a.overlays.Layers(), a.game.Selected(), rl.GetFrameTime())

	obs := a.game.Observation()
	a.hud.Draw(HUDData{
		Title:       "Survivors",
		Census:      obs.Census,
		Tick:        snap.Tick,
		Time:        snap.Time,
		Speed:       a.game.Speed(),
		FPS:         rl.GetFPS(),
		Paused:      a.game.Paused(),
		Climate:     snap.Climate,
		Temperature: snap.Temperature,
		Background:  renderer.Background(snap),
	})

	if a.overlays.IsEnabled(OverlayPodium) {
		a.podium.Draw(obs.Podium, a.game.Config().Survivor.EnergyMax)
	}

	a.drawSidePanels()
	a.drawInspector()

	if a.overlays.IsEnabled(OverlayEnergy) && a.energy.Len() > 0 {
		a.energy.Draw()
	}

	if a.report != nil {
		a.winner.Draw(*a.report, a.screenW, a.screenH)
	}

	a.hud.DrawControls(a.screenH, controlsLegend)
	rl.EndDrawing()
}

// drawSidePanels stacks the left-hand panels below the HUD.
func (a *App) drawSidePanels() {
	act := a.controls.Draw(a.overlays, a.game.Paused(), a.game.Speed(), game.MinSteps, game.MaxSteps)
	if act.TogglePause {
		a.game.TogglePause()
	}
	if act.Speed != 0 {
		a.game.SetSpeed(act.Speed)
	}
	if act.Toggled != "" {
		a.overlays.Toggle(act.Toggled)
	}
	if a.controls.IsVisible() {
		return
	}

	y := int32(105)
	if a.overlays.IsEnabled(OverlayBoard) && a.board != nil {
		a.boardView.SetPosition(5, y)
		y = a.boardView.Draw(a.board) + 5
	}
	if a.overlays.IsEnabled(OverlayPerf) {
		a.perf.SetPosition(5, y)
		a.perf.Draw(a.game.PerfStats(), a.game.Registry())
	}
}

func (a *App) drawInspector() {
	sel, ok := a.game.Inspect()
	if !ok {
		a.inspector.Hide()
		return
	}
	a.inspector.Draw(inspector.Subject{
		Agent:       sel,
		Temperament: a.game.Temperament(sel.Traits.Audacity),
		Place:       a.game.Place(sel.Identity.ID),
		Now:         a.game.Now(),
	})
}
