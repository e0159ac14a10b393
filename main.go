package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output generation and perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxGenerations := flag.Int("max-generations", 0, "Stop after N generations (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}

	done := func(g *game.Game) bool {
		return *maxGenerations > 0 && g.Generation() >= *maxGenerations
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g, err := game.NewGameWithOptions(cfg, opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"run_id", g.RunID(),
			"animals", cfg.World.Animals,
			"foods", cfg.World.Foods,
			"topology", cfg.Derived.Topology,
			"max_generations", *maxGenerations,
			"steps_per_update", *stepsPerUpdate,
		)

		for !done(g) {
			g.UpdateHeadless()
		}
		slog.Info("max generations reached",
			"seed", rngSeed,
			"run_id", g.RunID(),
			"generation", g.Generation(),
			"tick", g.Tick(),
		)
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Flock")
	defer rl.CloseWindow()

	// Escape deselects in the inspector instead of closing the window.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	defer g.Unload()

	slog.Info("starting simulation", "seed", rngSeed, "run_id", g.RunID())

	for !rl.WindowShouldClose() && !done(g) {
		g.Update()
		g.Draw()
	}

	slog.Info("simulation stopped",
		"seed", rngSeed,
		"run_id", g.RunID(),
		"generation", g.Generation(),
		"tick", g.Tick(),
	)
}
