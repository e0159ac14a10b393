package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/flock/genetic"
	"github.com/pthm-cable/flock/telemetry"
)

// recordGeneration routes the statistics of a finished generation to the
// history, the logs and the CSV output.
func (g *Game) recordGeneration(s genetic.Statistics) {
	now := time.Now()
	stats := telemetry.NewGenerationStats(g.runID, g.sim.Generation(), g.tick, s, now.Sub(g.genStart).Seconds())
	g.genStart = now

	g.history.Add(stats)
	perfStats := g.perfCollector.Stats()

	if g.generationCallback != nil {
		g.generationCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteGeneration(stats); err != nil {
		slog.Error("failed to write generation", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.Generation); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
