package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/game"
	"github.com/pthm-cable/flock/telemetry"
)

// FitnessEvaluator runs headless simulations and scores how well the
// animals learn to eat under a parameter vector.
type FitnessEvaluator struct {
	params      *ParamVector
	generations int
	seeds       []int64
	baseConfig  *config.Config

	mu          sync.Mutex
	bestFitness float64
	lastMaxFit  float64 // best generation max from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, generations int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		generations: generations,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastMaxFitness returns the highest per-generation max fitness seen in the
// most recent evaluation.
func (fe *FitnessEvaluator) LastMaxFitness() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMaxFit
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	maxFit  float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Seeds run in parallel; the result is their mean.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, maxFit float64
	for _, r := range results {
		totalFitness += r.fitness
		maxFit = max(maxFit, r.maxFit)
	}
	avgFitness := totalFitness / float64(len(fe.seeds))

	fe.mu.Lock()
	fe.bestFitness = min(fe.bestFitness, avgFitness)
	fe.lastMaxFit = maxFit
	fe.mu.Unlock()

	return avgFitness
}

// runSimulation trains one population for fe.generations generations.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) seedResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	var history []telemetry.GenerationStats
	g, err := game.NewGameWithOptions(cfg, game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: cfg.Genetic.GenerationLength + 1,
	})
	if err != nil {
		// Without an output directory nothing can fail.
		panic(err)
	}
	defer g.Unload()

	g.SetGenerationCallback(func(s telemetry.GenerationStats) {
		history = append(history, s)
	})

	for g.Generation() < fe.generations {
		g.UpdateHeadless()
	}

	var maxFit float64
	for _, s := range history {
		maxFit = max(maxFit, float64(s.MaxFitness))
	}
	return seedResult{fitness: computeFitness(history), maxFit: maxFit}
}

// copyConfig returns a copy of the base config the evaluation may modify.
// Slices are shared; parameters never touch them.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness scores a run by the negated mean of the average fitness
// over the second half of its generations, so populations that end up
// eating more score lower.
func computeFitness(history []telemetry.GenerationStats) float64 {
	if len(history) == 0 {
		return 0
	}

	tail := history[len(history)/2:]
	var sum float64
	for _, s := range tail {
		sum += float64(s.AvgFitness)
	}
	return -sum / float64(len(tail))
}
