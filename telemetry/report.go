package telemetry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// WinnerReport showcases the last Survivor standing.
type WinnerReport struct {
	ID              uint32  `json:"id"`
	Name            string  `json:"name"`
	Temperament     string  `json:"temperament"`
	Audacity        float64 `json:"audacity"`
	Resilience      float64 `json:"resilience"`
	Energy          float64 `json:"energy"`
	Hits            int     `json:"hits"`
	Meals           int     `json:"meals"`
	EnergyLost      float64 `json:"energy_lost"`
	EnergyRecovered float64 `json:"energy_recovered"`
	LifetimeSec     float64 `json:"lifetime_sec"`
}

// Report is the end-of-run summary.
type Report struct {
	Seed          uint64        `json:"seed"`
	Ticks         int32         `json:"ticks"`
	ElapsedSec    float64       `json:"elapsed_sec"`
	ClimateCycles int           `json:"climate_cycles"`
	Initial       int           `json:"initial_population"`
	Remaining     int           `json:"remaining"`
	DangerHits    int           `json:"danger_hits"`
	FoodRespawns  int           `json:"food_respawns"`
	Winner        *WinnerReport `json:"winner,omitempty"`
	Fallen        []HallEntry   `json:"fallen"`
}

// Log writes the report summary through slog.
func (r Report) Log() {
	attrs := []any{
		"ticks", r.Ticks,
		"elapsed_sec", r.ElapsedSec,
		"climate_cycles", r.ClimateCycles,
		"remaining", r.Remaining,
	}
	if r.Winner != nil {
		attrs = append(attrs,
			"winner", r.Winner.Name,
			"temperament", r.Winner.Temperament,
			"hits", r.Winner.Hits,
			"meals", r.Winner.Meals,
		)
	}
	slog.Info("report", attrs...)
}

// WriteReport saves r as indented JSON at path.
func WriteReport(r Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
