package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/telemetry"
)

func shortConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.World.Animals = 8
	cfg.World.Foods = 8
	cfg.Genetic.GenerationLength = 20
	return cfg
}

func TestHeadlessRunWritesOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	cfg := shortConfig(t)

	g, err := NewGameWithOptions(cfg, Options{
		Seed:           42,
		OutputDir:      dir,
		Headless:       true,
		StepsPerUpdate: 7,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}

	var seen []telemetry.GenerationStats
	g.SetGenerationCallback(func(s telemetry.GenerationStats) {
		seen = append(seen, s)
	})

	// A generation ends on the tick its age passes the generation length.
	for range 9 {
		g.UpdateHeadless()
	}
	g.Unload()

	if g.Tick() != 63 {
		t.Errorf("Tick() = %d, want 63", g.Tick())
	}
	if g.Generation() != 3 {
		t.Fatalf("Generation() = %d, want 3", g.Generation())
	}
	if len(seen) != 3 || g.History().Len() != 3 {
		t.Fatalf("callback saw %d generations, history has %d, want 3", len(seen), g.History().Len())
	}
	for i, s := range seen {
		if s.Generation != i+1 || s.Tick != int64(21*(i+1)) || s.RunID != g.RunID() || s.Animals != 8 {
			t.Errorf("generation %d stats = %+v", i, s)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("reading generations.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Errorf("generations.csv has %d lines, want header + 3:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "run_id,generation,tick") {
		t.Errorf("unexpected header %q", lines[0])
	}

	for _, name := range []string{"perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestHeadlessRunIsReproducible(t *testing.T) {
	run := func(seed int64) []float32 {
		g, err := NewGameWithOptions(shortConfig(t), Options{Seed: seed, Headless: true, StepsPerUpdate: 21})
		if err != nil {
			t.Fatalf("NewGameWithOptions: %v", err)
		}
		defer g.Unload()

		for range 4 {
			g.UpdateHeadless()
		}

		var out []float32
		for _, s := range g.History().Records() {
			out = append(out, s.MinFitness, s.AvgFitness, s.MaxFitness)
		}
		return out
	}

	a, b := run(7), run(7)
	if len(a) != 12 {
		t.Fatalf("got %d values, want 12", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a, b)
		}
	}
}

func TestTrainFinishesGeneration(t *testing.T) {
	g, err := NewGameWithOptions(shortConfig(t), Options{Seed: 1, Headless: true})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	defer g.Unload()

	g.UpdateHeadless()
	g.train()

	if g.Generation() != 1 || g.Simulation().Age() != 0 {
		t.Errorf("after train: generation %d age %d, want 1 and 0", g.Generation(), g.Simulation().Age())
	}
	if g.Tick() != 21 {
		t.Errorf("Tick() = %d, want 21", g.Tick())
	}
}

func TestNewGameBadOutputDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewGameWithOptions(shortConfig(t), Options{OutputDir: filepath.Join(file, "sub"), Headless: true}); err == nil {
		t.Error("expected error for output dir below a file")
	}
}

// steppingClock moves forward one millisecond every time it is read.
type steppingClock struct {
	t time.Time
}

func (c *steppingClock) now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func TestBoundaryTickPhases(t *testing.T) {
	cfg := shortConfig(t)
	cfg.Genetic.GenerationLength = 1

	g, err := NewGameWithOptions(cfg, Options{Seed: 3, Headless: true})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	defer g.Unload()

	clock := &steppingClock{t: time.Unix(0, 0)}
	g.perfCollector = telemetry.NewPerfCollectorWithClock(1, clock.now)

	if g.step() {
		t.Fatal("first tick ended the generation")
	}
	stats := g.perfCollector.Stats()
	if stats.PhaseAvg[telemetry.PhaseWorld] <= 0 {
		t.Error("ordinary tick recorded no world time")
	}
	if _, ok := stats.PhaseAvg[telemetry.PhaseEvolve]; ok {
		t.Error("ordinary tick recorded evolve time")
	}

	if !g.step() {
		t.Fatal("second tick did not end the generation")
	}
	// The window holds only the boundary tick, which steps the world
	// before it evolves.
	stats = g.perfCollector.Stats()
	for _, phase := range telemetry.Phases() {
		if stats.PhaseAvg[phase] <= 0 {
			t.Errorf("boundary tick recorded no %s time (phases %v)", phase, stats.PhaseAvg)
		}
	}
}
