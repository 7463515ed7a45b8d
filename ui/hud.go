package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/systems"
	"github.com/pthm-cable/survivors/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	Census      telemetry.Census
	Tick        int32
	Time        float64
	Speed       int
	FPS         int32
	Paused      bool
	Climate     string
	Temperature float64
	Background  rl.Color
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD. The world behind it is bright, so text sits on a
// panel.
func (h *HUD) Draw(data HUDData) {
	h.renderer.DrawPanel(5, 5, 360, 94)

	rl.DrawText(data.Title, 12, 10, 20, rl.White)

	c := data.Census
	rl.DrawText(
		fmt.Sprintf("Alive: %d | Dead: %d | Fleeing: %d | Eating: %d", c.Living, c.Dead, c.InDanger, c.Eating),
		12, 35, 14, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | %s | Speed: %dx | FPS: %d", data.Tick, clock(data.Time), data.Speed, data.FPS),
		12, 53, 14, rl.LightGray,
	)

	rl.DrawRectangle(12, 72, 12, 12, data.Background)
	rl.DrawRectangleLines(12, 72, 12, 12, h.renderer.Theme.PanelBorder)
	rl.DrawText(fmt.Sprintf("%s  %.1f C", data.Climate, data.Temperature), 30, 71, 14, rl.LightGray)

	if data.Paused {
		rl.DrawText("PAUSED", 300, 71, 14, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.DarkGray)
}

func clock(sec float64) string {
	d := time.Duration(sec * float64(time.Second))
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// PerfPanel renders the per-phase tick timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel with phases in pipeline order.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, registry *systems.SystemRegistry) {
	const width = 300
	height := int32(len(telemetry.Phases))*14 + 62
	p.renderer.DrawPanel(p.x, p.y, width, height)

	x := p.x + p.renderer.Theme.Padding
	y := p.y + p.renderer.Theme.Padding

	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(
		fmt.Sprintf("Avg %s  P95 %s  %.0f t/s",
			stats.AvgTickDuration.Round(time.Microsecond),
			stats.P95TickDuration.Round(time.Microsecond),
			stats.TicksPerSecond),
		x, y, 12, rl.Yellow,
	)
	y += 16

	for _, phase := range telemetry.Phases {
		pct := stats.PhasePct[phase]
		color := rl.LightGray
		if pct > 20 {
			color = rl.Red
		} else if pct > 10 {
			color = rl.Orange
		}

		name := phase
		if registry != nil {
			name = registry.GetName(phase)
		}
		rl.DrawText(
			fmt.Sprintf("%-16s %8s %5.1f%%", name, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

// PodiumPanel lists the top Survivors once few enough remain.
type PodiumPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPodiumPanel creates a new podium panel.
func NewPodiumPanel(x, y, width int32) *PodiumPanel {
	return &PodiumPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PodiumPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the podium. Nothing is drawn while the podium is closed.
func (p *PodiumPanel) Draw(podium []telemetry.PodiumEntry, energyMax float64) {
	if len(podium) == 0 {
		return
	}
	r := p.renderer
	padding := r.Theme.Padding

	height := int32(len(podium))*(r.Theme.LineHeight+2) + r.Theme.LineHeight + padding*2 + 4
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + padding
	rl.DrawText("Podium", p.x+padding, y, 14, r.Theme.Accent)
	y += r.Theme.LineHeight + 4

	for _, e := range podium {
		label := fmt.Sprintf("%d. %s", e.Place, e.Name)
		y = r.DrawBar(p.x+padding, y, label, float32(e.Energy), FieldRange{Max: float32(energyMax)}, "%.0f", p.width-padding*2)
	}
}
