package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/telemetry"
)

const (
	// History buffer size (number of stats windows kept)
	energyHistorySize = 120

	// Line series indices
	seriesMean   = 0
	seriesP10    = 1
	seriesP90    = 2
	seriesFood   = 3
	seriesAlive  = 4
	seriesHits   = 5
	seriesMeals  = 6
	numSeries    = 7
	firstCounter = seriesAlive
)

// EnergyPanel plots population energy and activity per stats window.
// Energy series share the left axis; counters share the right one.
type EnergyPanel struct {
	panelWidth  int32
	panelHeight int32
	panelX      int32
	panelY      int32

	energyMax float64
	last      telemetry.WindowStats

	// Ring buffers
	history      [numSeries][]float64
	historyIndex int
	historyCount int

	// Toggled by clicking the legend
	seriesVisible [numSeries]bool
	seriesNames   [numSeries]string
	seriesColors  [numSeries]rl.Color
}

// Energy panel colors
var (
	colorEnergyTitle   = rl.Color{R: 200, G: 200, B: 220, A: 255}
	colorEnergyPanelBg = rl.Color{R: 20, G: 20, B: 30, A: 230}
	colorGraphBg       = rl.Color{R: 15, G: 15, B: 25, A: 255}
	colorGraphGrid     = rl.Color{R: 40, G: 40, B: 50, A: 255}
	colorGraphBorder   = rl.Color{R: 60, G: 60, B: 70, A: 255}
)

// NewEnergyPanel creates the panel along the bottom of the screen.
func NewEnergyPanel(screenWidth, screenHeight int32, energyMax float64) *EnergyPanel {
	p := &EnergyPanel{
		panelHeight: 180,
		panelX:      10,
		energyMax:   energyMax,
	}
	p.Resize(screenWidth, screenHeight)

	for i := range p.history {
		p.history[i] = make([]float64, energyHistorySize)
	}
	p.seriesVisible = [numSeries]bool{true, true, true, false, true, false, false}
	p.seriesNames = [numSeries]string{"Mean", "P10", "P90", "Food", "Alive", "Hits", "Meals"}
	p.seriesColors = [numSeries]rl.Color{
		{R: 76, G: 200, B: 0, A: 255},
		{R: 60, G: 90, B: 140, A: 255},
		{R: 180, G: 230, B: 120, A: 255},
		{R: 0, G: 128, B: 255, A: 255},
		{R: 230, G: 230, B: 230, A: 255},
		{R: 255, G: 80, B: 60, A: 255},
		{R: 153, G: 51, B: 255, A: 255},
	}
	return p
}

// Resize keeps the panel clear of the inspector on the right.
func (p *EnergyPanel) Resize(screenWidth, screenHeight int32) {
	p.panelWidth = max(screenWidth-PanelWidth-30, 400)
	p.panelY = screenHeight - p.panelHeight - 10
}

// Record appends one closed stats window.
func (p *EnergyPanel) Record(s telemetry.WindowStats) {
	p.last = s
	idx := p.historyIndex
	p.history[seriesMean][idx] = s.EnergyMean
	p.history[seriesP10][idx] = s.EnergyP10
	p.history[seriesP90][idx] = s.EnergyP90
	p.history[seriesFood][idx] = s.FoodQuantity
	p.history[seriesAlive][idx] = float64(s.Alive)
	p.history[seriesHits][idx] = float64(s.Hits)
	p.history[seriesMeals][idx] = float64(s.Meals)

	p.historyIndex = (p.historyIndex + 1) % energyHistorySize
	if p.historyCount < energyHistorySize {
		p.historyCount++
	}
}

// Len returns how many windows are recorded.
func (p *EnergyPanel) Len() int { return p.historyCount }

// HandleClick toggles a series when the legend is clicked. It reports
// whether the click landed on the panel.
func (p *EnergyPanel) HandleClick(mx, my int32) bool {
	if mx < p.panelX || mx > p.panelX+p.panelWidth || my < p.panelY || my > p.panelY+p.panelHeight {
		return false
	}
	legendY := p.panelY + p.panelHeight - 24
	for i := 0; i < numSeries; i++ {
		itemX := p.panelX + 10 + int32(i)*80
		if mx >= itemX && mx < itemX+75 && my >= legendY && my < legendY+18 {
			p.seriesVisible[i] = !p.seriesVisible[i]
			break
		}
	}
	return true
}

// Draw renders the panel.
func (p *EnergyPanel) Draw() {
	rl.DrawRectangle(p.panelX, p.panelY, p.panelWidth, p.panelHeight, colorEnergyPanelBg)
	rl.DrawRectangleLines(p.panelX, p.panelY, p.panelWidth, p.panelHeight, colorGraphBorder)
	rl.DrawText("POPULATION ENERGY", p.panelX+10, p.panelY+6, 14, colorEnergyTitle)

	if p.historyCount == 0 {
		rl.DrawText("Waiting for the first stats window...", p.panelX+10, p.panelY+80, 14, ColorTextDim)
		return
	}

	barsWidth := int32(170)
	p.drawDistribution(p.panelX+10, p.panelY+30, barsWidth-20)
	p.drawGraph(p.panelX+barsWidth+10, p.panelY+24, p.panelWidth-barsWidth-20, p.panelHeight-54)
	p.drawLegend(p.panelX+10, p.panelY+p.panelHeight-24)
}

// drawDistribution draws the latest window's energy quantiles as bars.
func (p *EnergyPanel) drawDistribution(x, y, width int32) {
	rows := []struct {
		label string
		value float64
		color rl.Color
	}{
		{"P90", p.last.EnergyP90, p.seriesColors[seriesP90]},
		{"Mean", p.last.EnergyMean, p.seriesColors[seriesMean]},
		{"P50", p.last.EnergyP50, p.seriesColors[seriesMean]},
		{"P10", p.last.EnergyP10, p.seriesColors[seriesP10]},
	}
	for _, r := range rows {
		p.drawSingleBar(x, y, width, 14, r.label, r.value, p.energyMax, r.color)
		y += 18
	}
	rl.DrawText(fmt.Sprintf("alive %d  dead %d", p.last.Alive, p.last.Dead), x, y+4, 11, ColorText)
}

func (p *EnergyPanel) drawSingleBar(x, y, width, height int32, label string, value, total float64, color rl.Color) {
	labelW := int32(35)
	barW := width - labelW - 40

	rl.DrawText(label, x, y, 11, ColorText)
	barX := x + labelW
	rl.DrawRectangle(barX, y, barW, height, ColorBarBg)

	ratio := 0.0
	if total > 0 {
		ratio = max(0, min(value/total, 1))
	}
	rl.DrawRectangle(barX, y, int32(float64(barW)*ratio), height, color)
	rl.DrawText(fmt.Sprintf("%.1f", value), barX+barW+4, y, 10, ColorTextDim)
}

func (p *EnergyPanel) drawGraph(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, colorGraphBg)
	rl.DrawRectangleLines(x, y, w, h, colorGraphBorder)
	for i := int32(1); i < 4; i++ {
		rl.DrawLine(x, y+h*i/4, x+w, y+h*i/4, colorGraphGrid)
	}
	for i := int32(1); i < 6; i++ {
		rl.DrawLine(x+w*i/6, y, x+w*i/6, y+h, colorGraphGrid)
	}
	if p.historyCount < 2 {
		return
	}

	countMin, countMax := p.seriesRange(firstCounter, numSeries)
	for s := 0; s < numSeries; s++ {
		if !p.seriesVisible[s] {
			continue
		}
		lo, hi := 0.0, p.energyMax
		if s >= firstCounter {
			lo, hi = countMin, countMax
		}
		p.drawSeriesLine(x, y, w, h, s, lo, hi)
	}

	rl.DrawText(fmt.Sprintf("%.0f", p.energyMax), x+2, y+2, 9, ColorTextDim)
	rl.DrawText("0", x+2, y+h-10, 9, ColorTextDim)
	hiLabel := fmt.Sprintf("%.0f", countMax)
	rl.DrawText(hiLabel, x+w-rl.MeasureText(hiLabel, 9)-2, y+2, 9, ColorTextDim)
}

// seriesRange finds min/max across the visible series in [from, to).
func (p *EnergyPanel) seriesRange(from, to int) (lo, hi float64) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for s := from; s < to; s++ {
		if !p.seriesVisible[s] {
			continue
		}
		for i := 0; i < p.historyCount; i++ {
			v := p.at(s, i)
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	if lo >= hi {
		return 0, max(hi, 1)
	}
	return min(lo, 0), hi * 1.1
}

// at returns the i-th oldest recorded value of a series.
func (p *EnergyPanel) at(series, i int) float64 {
	idx := (p.historyIndex - p.historyCount + i + energyHistorySize) % energyHistorySize
	return p.history[series][idx]
}

func (p *EnergyPanel) drawSeriesLine(x, y, w, h int32, series int, lo, hi float64) {
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	var prevX, prevY int32
	for i := 0; i < p.historyCount; i++ {
		px := x + int32(float64(i)*float64(w)/float64(p.historyCount-1))
		py := y + h - int32((p.at(series, i)-lo)/span*float64(h))
		py = max(y, min(py, y+h))
		if i > 0 {
			rl.DrawLine(prevX, prevY, px, py, p.seriesColors[series])
		}
		prevX, prevY = px, py
	}
}

func (p *EnergyPanel) drawLegend(x, y int32) {
	for i := 0; i < numSeries; i++ {
		itemX := x + int32(i)*80
		color, text := p.seriesColors[i], ColorText
		if !p.seriesVisible[i] {
			color.A = 80
			text = ColorTextDim
		}
		rl.DrawRectangle(itemX, y+2, 10, 10, color)
		rl.DrawText(p.seriesNames[i], itemX+14, y, 11, text)
	}
	rl.DrawText("(click to toggle)", x+numSeries*80+10, y, 10, ColorTextDim)
}
