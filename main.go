package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/game"
	"github.com/pthm-cable/survivors/telemetry"
	"github.com/pthm-cable/survivors/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics until a winner is declared")
	logStats := flag.Bool("perf", false, "Output stats windows and perf summaries via slog")
	logText := flag.Bool("log-text", false, "Log as text instead of JSON")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("telemetry-dir", "", "Output directory for CSV logs, snapshots and the report")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	population := flag.Int("population", 0, "Number of Survivors (0 = use config)")
	width := flag.Int("width", 0, "Window width (0 = use config)")
	height := flag.Int("height", 0, "Window height (0 = use config)")
	stepsPerUpdate := flag.Int("speed", 1, "Simulation ticks per frame (1-10)")

	flag.Parse()

	// Set up slog before anything can log
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, nil)
	if *logText {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}
	if *population > 0 {
		cfg.World.Population = *population
	}
	if *width > 0 {
		cfg.Screen.Width = *width
	}
	if *height > 0 {
		cfg.Screen.Height = *height
	}
	cfg.ComputeDerived()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	opts := game.Options{
		Seed:           rngSeed,
		OutputDir:      *outputDir,
		LogStats:       *logStats,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		if err := runHeadless(cfg, opts, int32(*maxTicks)); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindowed(cfg, opts, int32(*maxTicks)); err != nil {
		slog.Error("windowed run failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless steps the simulation as fast as possible, no raylib needed.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int32) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"population", cfg.World.Population,
		"max_ticks", maxTicks,
	)

	g.Run(ctx, maxTicks)
	return g.WriteReport()
}

func runWindowed(cfg *config.Config, opts game.Options, maxTicks int32) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Survivors")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape clears the selection instead of closing the window.
	rl.SetExitKey(0)

	board := telemetry.NewBoard()
	opts.Board = board

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	ui.NewApp(g, board).Run(maxTicks)
	return g.WriteReport()
}
