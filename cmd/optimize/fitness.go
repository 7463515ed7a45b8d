package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/game"
	"github.com/pthm-cable/survivors/telemetry"
)

// FitnessEvaluator runs headless games and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []uint64
	baseConfig *config.Config
	targetSec  float64

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestReport  *telemetry.Report
	lastResult  seedResult // averaged over the seeds of the last Evaluate call
}

// NewFitnessEvaluator creates a new evaluator aiming for games that last
// targetSec simulated seconds.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []uint64, baseCfg *config.Config, targetSec float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		targetSec:   targetSec,
		bestFitness: math.Inf(1),
	}
}

// BestReport returns the report of the best single game seen so far.
func (fe *FitnessEvaluator) BestReport() *telemetry.Report {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestReport
}

// LastResult returns the averaged components of the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() (durationSec, winRate, quality float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	r := fe.lastResult
	return r.durationSec, r.winRate, r.quality
}

// runResult holds the results from a single game.
type runResult struct {
	report      telemetry.Report
	windowStats []telemetry.WindowStats
	failed      bool
}

// seedResult holds the scored result from one seed.
type seedResult struct {
	fitness     float64
	durationSec float64
	winRate     float64 // 1 when the game ended with a winner
	quality     float64
	report      *telemetry.Report
}

// Penalty weights.
const (
	noWinnerPenalty = 1.0
	failedFitness   = 100.0
	qualityWeight   = 0.3
)

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Games are independent: one goroutine per seed, each with its own
	// config copy, world and rng.
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s uint64) {
			defer wg.Done()
			results[idx] = fe.score(fe.runSimulation(x, s))
		}(i, seed)
	}
	wg.Wait()

	var avg seedResult
	best := seedResult{fitness: math.Inf(1)}
	for _, r := range results {
		avg.fitness += r.fitness
		avg.durationSec += r.durationSec
		avg.winRate += r.winRate
		avg.quality += r.quality
		if r.fitness < best.fitness {
			best = r
		}
	}
	n := float64(len(results))
	avg.fitness /= n
	avg.durationSec /= n
	avg.winRate /= n
	avg.quality /= n

	fe.mu.Lock()
	if avg.fitness < fe.bestFitness {
		fe.bestFitness = avg.fitness
		fe.bestReport = best.report
	}
	fe.lastResult = avg
	fe.mu.Unlock()

	return avg.fitness
}

// runSimulation plays a single headless game until a winner is declared,
// nobody is left or maxTicks is reached.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed uint64) *runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{}
	if err := cfg.Validate(); err != nil {
		slog.Warn("candidate config rejected", "error", err)
		result.failed = true
		return result
	}

	g, err := game.NewGame(cfg, game.Options{Seed: seed})
	if err != nil {
		slog.Warn("candidate game failed to start", "seed", seed, "error", err)
		result.failed = true
		return result
	}
	defer g.Close()

	windows := 0
	for !g.Over() && g.Tick() < fe.maxTicks {
		g.Step()
		if stats, n := g.LastWindow(); n != windows {
			windows = n
			result.windowStats = append(result.windowStats, stats)
		}
	}

	result.report = g.Report()
	return result
}

// copyConfig returns a copy of the base config that candidates can mutate.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Weather.Cycle = append([]string(nil), fe.baseConfig.Weather.Cycle...)
	return &cfg
}

// score turns one game into a fitness value.
// Formula: ln(duration/target)^2 + noWinnerPenalty*(no winner) - qualityWeight*quality
// Duration dominates; quality separates configs with similar durations.
func (fe *FitnessEvaluator) score(r *runResult) seedResult {
	if r.failed {
		return seedResult{fitness: failedFitness}
	}

	duration := max(r.report.ElapsedSec, fe.baseConfig.Physics.DT)
	logErr := math.Log(duration / fe.targetSec)

	res := seedResult{
		durationSec: duration,
		quality:     computeQuality(r.windowStats, r.report.Initial),
		report:      &r.report,
	}
	res.fitness = logErr*logErr - qualityWeight*res.quality
	if r.report.Winner != nil {
		res.winRate = 1
	} else {
		res.fitness += noWinnerPenalty
	}
	return res
}

// Quality component weights.
const (
	qualityWeightAttrition = 0.4
	qualityWeightFeeding   = 0.3
	qualityWeightDanger    = 0.3
)

// computeQuality scores how eventful a game was, in [0, 1]: survivors
// should fall steadily rather than all at once, find food, and meet the
// Danger.
func computeQuality(windows []telemetry.WindowStats, initial int) float64 {
	if len(windows) < 2 || initial <= 0 {
		return 0
	}

	removed := make([]float64, len(windows))
	var meals, hits, aliveSum float64
	for i, w := range windows {
		removed[i] = float64(w.Removed)
		meals += float64(w.Meals)
		hits += float64(w.Hits)
		aliveSum += float64(w.Alive)
	}

	// Steady attrition: low coefficient of variation of removals per window.
	attrition := 0.0
	if mean := stat.Mean(removed, nil); mean > 0 {
		cv := stat.StdDev(removed, nil) / mean
		attrition = math.Exp(-cv * cv / 4)
	}

	aliveMean := max(aliveSum/float64(len(windows)), 1)
	feeding := 1 - math.Exp(-meals/aliveMean)
	danger := 1 - math.Exp(-hits/float64(initial))

	quality := qualityWeightAttrition*attrition +
		qualityWeightFeeding*feeding +
		qualityWeightDanger*danger
	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
