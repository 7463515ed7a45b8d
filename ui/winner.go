package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/telemetry"
)

func winnerOf(data any) *telemetry.WinnerReport {
	return data.(telemetry.Report).Winner
}

func hasWinner(data any) bool { return winnerOf(data) != nil }

func noWinner(data any) bool { return winnerOf(data) == nil }

// WinnerSections describes the end-of-game panel over a telemetry.Report.
func WinnerSections(sc config.SurvivorConfig) []SectionDescriptor {
	audacity := FieldRange{Min: float32(sc.AudacityMin), Max: float32(sc.AudacityMax)}
	resilience := FieldRange{Min: float32(sc.ResilienceMin), Max: float32(sc.ResilienceMax)}
	return []SectionDescriptor{
		{
			Title:   "WINNER",
			Visible: hasWinner,
			Fields: []FieldDescriptor{
				{Label: "Name", Widget: WidgetText, TextGetter: func(d any) string { return winnerOf(d).Name }},
				{Label: "Temperament", Widget: WidgetText, TextGetter: func(d any) string { return winnerOf(d).Temperament }},
				{Label: "Energy", Widget: WidgetBar, Format: "%.0f", Range: FieldRange{Max: float32(sc.EnergyMax)},
					Getter: func(d any) float32 { return float32(winnerOf(d).Energy) }},
				{Label: "Audacity", Widget: WidgetBar, Format: "%.1f", Range: audacity,
					Getter: func(d any) float32 { return float32(winnerOf(d).Audacity) }},
				{Label: "Resilience", Widget: WidgetBar, Format: "%.1f", Range: resilience,
					Getter: func(d any) float32 { return float32(winnerOf(d).Resilience) }},
				{Label: "Lifetime", Widget: WidgetText, TextGetter: func(d any) string { return clock(winnerOf(d).LifetimeSec) }},
			},
		},
		{
			Title:   "NOBODY SURVIVED",
			Visible: noWinner,
		},
		{
			Title:   "RECORD",
			Visible: hasWinner,
			Fields: []FieldDescriptor{
				{Label: "Danger hits", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float32 { return float32(winnerOf(d).Hits) }},
				{Label: "Meals", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float32 { return float32(winnerOf(d).Meals) }},
				{Label: "Energy lost", Widget: WidgetText, Format: "%.1f",
					Getter: func(d any) float32 { return float32(winnerOf(d).EnergyLost) }},
				{Label: "Recovered", Widget: WidgetText, Format: "%.1f",
					Getter: func(d any) float32 { return float32(winnerOf(d).EnergyRecovered) }},
			},
		},
		{
			Title: "GAME",
			Fields: []FieldDescriptor{
				{Label: "Duration", Widget: WidgetText, TextGetter: func(d any) string { return clock(d.(telemetry.Report).ElapsedSec) }},
				{Label: "Survivors", Widget: WidgetText, TextGetter: func(d any) string {
					r := d.(telemetry.Report)
					return fmt.Sprintf("%d / %d", r.Remaining, r.Initial)
				}},
				{Label: "Climate cycles", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float32 { return float32(d.(telemetry.Report).ClimateCycles) }},
				{Label: "Danger hits", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float32 { return float32(d.(telemetry.Report).DangerHits) }},
				{Label: "Food respawns", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float32 { return float32(d.(telemetry.Report).FoodRespawns) }},
			},
		},
	}
}

// WinnerPanel is the centred end-of-game panel.
type WinnerPanel struct {
	renderer *Renderer
	sections []SectionDescriptor
	width    int32
}

// NewWinnerPanel creates the panel with bar ranges taken from sc.
func NewWinnerPanel(sc config.SurvivorConfig) *WinnerPanel {
	return &WinnerPanel{
		renderer: NewRenderer(),
		sections: WinnerSections(sc),
		width:    340,
	}
}

// Draw renders report centred on a screen of the given size.
func (w *WinnerPanel) Draw(report telemetry.Report, screenW, screenH int32) {
	r := w.renderer
	padding := r.Theme.Padding

	height := padding*2 + 28
	for _, sd := range w.sections {
		height += r.SectionHeight(sd, report)
	}

	x := (screenW - w.width) / 2
	y := (screenH - height) / 2
	r.DrawPanel(x, y, w.width, height)
	rl.DrawRectangleLines(x+2, y+2, w.width-4, height-4, r.Theme.Accent)

	title := "GAME OVER"
	tw := rl.MeasureText(title, 20)
	rl.DrawText(title, x+(w.width-tw)/2, y+padding, 20, rl.White)

	cy := y + padding + 28
	for _, sd := range w.sections {
		cy = r.DrawSection(x+padding, cy, sd, report, w.width-padding*2)
	}
}
