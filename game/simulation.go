package game

import (
	"github.com/pthm-cable/flock/telemetry"
)

// UpdateHeadless runs StepsPerUpdate ticks without input or drawing.
func (g *Game) UpdateHeadless() {
	for range g.stepsPerUpdate {
		g.step()
	}
}

// step runs one simulation tick and reports whether it finished a
// generation.
func (g *Game) step() bool {
	g.perfCollector.StartTick()
	defer g.perfCollector.EndTick()

	g.perfCollector.StartPhase(telemetry.PhaseWorld)
	due := g.sim.Advance(g.rng)
	g.tick++
	if !due {
		return false
	}

	g.perfCollector.StartPhase(telemetry.PhaseEvolve)
	stats := g.sim.Evolve(g.rng)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordGeneration(stats)
	return true
}

// train steps until the current generation ends.
func (g *Game) train() {
	for !g.step() {
	}
}
