// Package inspector draws the selected Survivor's components, driven by
// their inspect struct tags, and the population energy graphs.
package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/systems"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorGold        = rl.Color{R: 255, G: 215, B: 0, A: 255}
)

// Subject is what the inspector shows for one Survivor.
type Subject struct {
	Agent       systems.Agent
	Temperament string
	Place       int // podium place, 0 when off the podium
	Now         float64
}

// Sections lists the inspectable components of a Survivor in display order.
func (s Subject) Sections() []Section {
	a := s.Agent
	return []Section{
		NewSection("ENERGY", a.Energy),
		NewSection("SENSES", a.Senses),
		NewSection("TRAITS", a.Traits),
		NewSection("STATE", a.State),
		NewSection("STATS", &a.State.Stats),
	}
}

// Inspector is the right-hand panel for the selected Survivor.
type Inspector struct {
	panelX, panelY int32
	height         int32
	visible        bool
}

// NewInspector creates an inspector docked to the right edge.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	ins := &Inspector{panelY: 10}
	ins.Resize(screenWidth, screenHeight)
	return ins
}

// Resize re-docks the panel.
func (ins *Inspector) Resize(screenWidth, _ int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// HandleClick reports whether a click at (mx, my) landed on the panel
// and whether it hit the close button.
func (ins *Inspector) HandleClick(mx, my int32) (consumed, closed bool) {
	if !ins.visible {
		return false, false
	}
	closeX, closeY := ins.panelX+PanelWidth-25, ins.panelY+5
	if mx >= closeX && mx <= closeX+20 && my >= closeY && my <= closeY+20 {
		return true, true
	}
	inside := mx >= ins.panelX && mx <= ins.panelX+PanelWidth && my >= ins.panelY && my <= ins.panelY+ins.height
	return inside, false
}

// Hide marks the panel as not drawn, so clicks pass through.
func (ins *Inspector) Hide() { ins.visible = false }

// Draw renders the panel for s.
func (ins *Inspector) Draw(s Subject) {
	ins.visible = true
	sections := s.Sections()

	ins.height = HeaderHeight + PanelPadding*2 + 22 + 18*3 + 40
	for _, sec := range sections {
		ins.height += SectionHeight(sec)
	}

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, ins.height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(ins.height)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	title := s.Agent.Identity.Name
	titleColor := ColorHeaderText
	if s.Place == 1 {
		titleColor = ColorGold
	}
	rl.DrawText(title, ins.panelX+PanelPadding, ins.panelY+7, 16, titleColor)

	closeX, closeY := ins.panelX+PanelWidth-25, ins.panelY+5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	header := fmt.Sprintf("#%d  %s", s.Agent.Identity.ID, s.Temperament)
	if s.Place > 0 {
		header += fmt.Sprintf("  podium %d", s.Place)
	}
	rl.DrawText(header, x, y, 14, ColorHeaderText)
	y += 22

	a := s.Agent
	y += DrawLabel(x, y, "Position", fmt.Sprintf("(%.0f, %.0f)", a.Pos.X, a.Pos.Y), nil)
	y += DrawLabel(x, y, "Speed", fmt.Sprintf("%.2f", a.Motion.Speed), nil)
	y += DrawLabel(x, y, "Age", fmt.Sprintf("%.1fs", s.Now-a.State.Stats.BornAt), nil)
	y += DrawAngle(x, y, "Heading", float32(math.Atan2(a.Motion.DY, a.Motion.DX)))

	for _, sec := range sections {
		ins.drawSectionHeader(x, y, sec.Title)
		y += 22
		for _, f := range sec.Fields {
			y += DrawField(x, y, f)
		}
	}
}

func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}
