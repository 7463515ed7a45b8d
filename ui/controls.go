package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/telemetry"
)

// ControlsAction is what the player asked for through the controls panel
// during one frame.
type ControlsAction struct {
	TogglePause bool
	Speed       int // new speed, 0 = unchanged
	Toggled     OverlayID
}

// ControlsPanel renders the left-side panel: pause button, speed slider
// and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
	height   int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether the screen point lies on the panel, so clicks
// there do not select Survivors.
func (c *ControlsPanel) Contains(x, y int32) bool {
	return c.visible && x >= c.x && x < c.x+c.width && y >= c.y && y < c.y+c.height
}

// Draw renders the panel and returns the actions taken this frame.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, paused bool, speed, minSpeed, maxSpeed int) ControlsAction {
	var act ControlsAction
	if !c.visible {
		return act
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	items := 0
	for _, cat := range categories {
		items += len(overlays.ByCategory(cat)) + 1
	}
	c.height = int32(items)*(lineHeight+2) + padding*3 + lineHeight + 70
	r.DrawPanel(c.x, c.y, c.width, c.height)

	x := float32(c.x + padding)
	y := c.y + padding
	inner := float32(c.width - padding*2)

	rl.DrawText("Controls", int32(x), y, 16, rl.White)
	y += lineHeight + 4

	label := "Pause"
	if paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: inner, Height: 22}, label) {
		act.TogglePause = true
	}
	y += 28

	rl.DrawText(fmt.Sprintf("Speed %dx", speed), int32(x), y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight
	v := gui.SliderBar(
		rl.Rectangle{X: x + 12, Y: float32(y), Width: inner - 36, Height: 14},
		fmt.Sprint(minSpeed), fmt.Sprint(maxSpeed),
		float32(speed), float32(minSpeed), float32(maxSpeed),
	)
	if s := int(v + 0.5); s != speed {
		act.Speed = s
	}
	y += 22

	for _, category := range categories {
		rl.DrawText(categoryLabel(category), int32(x), y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight + 2
		for _, desc := range overlays.ByCategory(category) {
			if c.drawToggle(int32(x), y, desc, overlays.IsEnabled(desc.ID), int32(inner)) {
				act.Toggled = desc.ID
			}
			y += lineHeight + 2
		}
	}
	return act
}

// drawToggle draws a single overlay toggle line and reports a click on it.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) bool {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}

	row := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(r.Theme.LineHeight)}
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(rl.GetMousePosition(), row)
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "world":
		return "World"
	case "debug":
		return "Debug"
	case "panels":
		return "Panels"
	default:
		return cat
	}
}

// BoardPanel renders the debug board published by the simulation.
type BoardPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewBoardPanel creates a new board panel.
func NewBoardPanel(x, y, width int32) *BoardPanel {
	return &BoardPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (b *BoardPanel) SetPosition(x, y int32) {
	b.x = x
	b.y = y
}

// Draw renders the board lines and returns the panel's bottom edge.
func (b *BoardPanel) Draw(board *telemetry.Board) int32 {
	r := b.renderer
	padding := r.Theme.Padding
	lines := board.Lines()

	height := int32(len(lines)+1)*r.Theme.LineHeight + padding*2 + 4
	r.DrawPanel(b.x, b.y, b.width, height)

	y := b.y + padding
	rl.DrawText("Debug Board", b.x+padding, y, 14, rl.White)
	y += r.Theme.LineHeight + 4
	for _, line := range lines {
		y = r.DrawLabelValue(b.x+padding, y, line.Label, line.Value)
	}
	return b.y + height
}
