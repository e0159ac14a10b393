// Package game drives a simulation tick by tick, either headless or in a
// raylib window, and routes per-generation statistics to logs, CSV files
// and the HUD.
package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/flock/camera"
	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/inspector"
	"github.com/pthm-cable/flock/renderer"
	"github.com/pthm-cable/flock/simulation"
	"github.com/pthm-cable/flock/telemetry"
	"github.com/pthm-cable/flock/ui"
)

// Options configures a game.
type Options struct {
	Seed           int64  // RNG seed
	LogStats       bool   // log generation and perf stats via slog
	OutputDir      string // directory for CSV logs and config snapshot (empty = disabled)
	Headless       bool   // no window, no drawing
	StepsPerUpdate int    // simulation ticks per Update call
}

// GenerationCallback is invoked after every finished generation.
type GenerationCallback func(telemetry.GenerationStats)

// Game holds the complete driver state.
type Game struct {
	cfg   *config.Config
	sim   *simulation.Simulation
	rng   *rand.Rand
	runID string

	// State
	tick           int64
	paused         bool
	stepsPerUpdate int
	headless       bool
	genStart       time.Time

	// Telemetry
	logStats           bool
	history            *telemetry.History
	perfCollector      *telemetry.PerfCollector
	outputManager      *telemetry.OutputManager
	generationCallback GenerationCallback

	// Rendering (nil when headless)
	camera        *camera.Camera
	worldRenderer *renderer.WorldRenderer
	inspector     *inspector.Inspector
	overlays      *ui.OverlayRegistry
	hud           *ui.HUD
	controls      *ui.ControlsPanel
	perfPanel     *ui.PerfPanel
	chart         *ui.FitnessChart

	screenWidth, screenHeight float32
}

// NewGameWithOptions builds a game with a random population seeded from
// opts.Seed. It fails only when the output directory cannot be prepared.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	seed := uint64(opts.Seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		runID:          uuid.NewString(),
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		history:        telemetry.NewHistory(cfg.Telemetry.HistorySize),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		genStart:       time.Now(),
	}
	g.sim = simulation.Random(cfg, rng)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("game: writing config snapshot: %w", err)
	}
	g.outputManager = om
	if om != nil {
		slog.Info("writing output", "dir", om.Dir(), "run_id", g.runID)
	}

	if !opts.Headless {
		g.initRendering()
	}

	return g, nil
}

func (g *Game) initRendering() {
	g.screenWidth = float32(g.cfg.Screen.Width)
	g.screenHeight = float32(g.cfg.Screen.Height)

	g.camera = camera.New(g.screenWidth, g.screenHeight)
	g.worldRenderer = renderer.NewWorldRenderer()
	g.inspector = inspector.NewInspector(int32(g.screenWidth))
	g.overlays = ui.NewOverlayRegistry()
	g.hud = ui.NewHUD()
	g.controls = ui.NewControlsPanel(10, 120, 220)
	g.perfPanel = ui.NewPerfPanel(10, 230, 220)
	g.chart = ui.NewFitnessChart(10, int32(g.screenHeight)-190, 320, 150)
}

// SetGenerationCallback registers fn to receive every generation's stats.
func (g *Game) SetGenerationCallback(fn GenerationCallback) {
	g.generationCallback = fn
}

// Simulation returns the driven simulation.
func (g *Game) Simulation() *simulation.Simulation { return g.sim }

// RunID returns the unique identifier of this run.
func (g *Game) RunID() string { return g.runID }

// Tick returns the number of ticks simulated since the run started.
func (g *Game) Tick() int64 { return g.tick }

// Generation returns the number of finished generations.
func (g *Game) Generation() int { return g.sim.Generation() }

// History returns the recent generation statistics.
func (g *Game) History() *telemetry.History { return g.history }

// Unload flushes and closes the output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
