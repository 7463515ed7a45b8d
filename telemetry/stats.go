package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Census at window end
	Alive     int `csv:"alive"`
	Dead      int `csv:"dead"`
	InDanger  int `csv:"in_danger"`
	Following int `csv:"following"`
	Critical  int `csv:"critical"`
	Eating    int `csv:"eating"`
	Rushing   int `csv:"rushing"`

	// Events during window
	Hits       int `csv:"hits"`
	Attacks    int `csv:"attacks"`
	Meals      int `csv:"meals"`
	Satiated   int `csv:"satiated"`
	Disengaged int `csv:"disengaged"`
	Starved    int `csv:"starved"`
	Removed    int `csv:"removed"`
	Depletions int `csv:"food_depleted"`
	Respawns   int `csv:"food_respawned"`

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// World at window end
	FoodQuantity   float64 `csv:"food_quantity"`
	FoodFull       bool    `csv:"food_full"`
	DangerRage     float64 `csv:"danger_rage"`
	DangerRotation float64 `csv:"danger_rotation"`
	Climate        string  `csv:"climate"`
	Temperature    float64 `csv:"temperature"`
}

// Percentile returns the p-th percentile of a sorted slice using the
// empirical distribution: the smallest value whose cumulative share of the
// samples is at least p. p should be in [0, 1]. Returns 0 if empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return stat.Quantile(min(max(p, 0), 1), stat.Empirical, sorted, nil)
}

// ComputeEnergyStats calculates mean and percentiles from energy values.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	mean = stat.Mean(values, nil)

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("alive", s.Alive),
		slog.Int("dead", s.Dead),
		slog.Int("in_danger", s.InDanger),
		slog.Int("following", s.Following),
		slog.Int("critical", s.Critical),
		slog.Int("eating", s.Eating),
		slog.Int("rushing", s.Rushing),
		slog.Int("hits", s.Hits),
		slog.Int("attacks", s.Attacks),
		slog.Int("meals", s.Meals),
		slog.Int("satiated", s.Satiated),
		slog.Int("disengaged", s.Disengaged),
		slog.Int("starved", s.Starved),
		slog.Int("removed", s.Removed),
		slog.Int("food_depleted", s.Depletions),
		slog.Int("food_respawned", s.Respawns),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("food_quantity", s.FoodQuantity),
		slog.Bool("food_full", s.FoodFull),
		slog.Float64("danger_rage", s.DangerRage),
		slog.Float64("danger_rotation", s.DangerRotation),
		slog.String("climate", s.Climate),
		slog.Float64("temperature", s.Temperature),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
