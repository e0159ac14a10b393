// Package simulation ties the world, the brains and the genetic algorithm
// together into a generational loop.
//
// Every generation lasts a fixed number of ticks. When it ends, each animal's
// satiation becomes its fitness, the genetic algorithm breeds a new set of
// brain weights and the animals are respawned with them.
package simulation

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/genetic"
	"github.com/pthm-cable/flock/neural"
)

// Simulation owns a world and evolves it one generation at a time.
// It is not safe for concurrent use.
type Simulation struct {
	world            *World
	ga               *genetic.GeneticAlgorithm[*AnimalAgent]
	generationLength int
	age              int
	generation       int
}

// Random builds a simulation with cfg.World.Animals randomly wired brains.
func Random(cfg *config.Config, rng *rand.Rand) *Simulation {
	world, err := newWorld(cfg, rng, cfg.World.Animals, func(_ int, topology neural.Topology) (*neural.Network, error) {
		return neural.Random(rng, topology), nil
	})
	if err != nil {
		// Random brains always match their topology.
		panic(fmt.Sprintf("simulation: %v", err))
	}
	return newSimulation(cfg, world)
}

// New builds a simulation with one animal per chromosome. It fails if a
// chromosome does not fit the brain topology described by cfg.
func New(cfg *config.Config, rng *rand.Rand, chromosomes []genetic.Chromosome) (*Simulation, error) {
	if len(chromosomes) == 0 {
		return nil, errors.New("simulation: no chromosomes")
	}

	world, err := newWorld(cfg, rng, len(chromosomes), func(i int, topology neural.Topology) (*neural.Network, error) {
		return neural.FromWeights(topology, chromosomes[i])
	})
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	return newSimulation(cfg, world), nil
}

func newSimulation(cfg *config.Config, world *World) *Simulation {
	ga := genetic.New[*AnimalAgent](
		genetic.RouletteWheelSelection[*AnimalAgent]{},
		genetic.UniformCrossover{},
		genetic.NewGaussianMutation(float32(cfg.Genetic.MutationProbability), float32(cfg.Genetic.MutationCoefficient)),
		NewAnimalAgent,
	)

	return &Simulation{
		world:            world,
		ga:               ga,
		generationLength: cfg.Genetic.GenerationLength,
	}
}

// World returns the current world for reading.
func (s *Simulation) World() *World { return s.world }

// Age returns the number of ticks run in the current generation.
func (s *Simulation) Age() int { return s.age }

// Generation returns how many generations have been evolved.
func (s *Simulation) Generation() int { return s.generation }

// GenerationLength returns the number of ticks a generation lasts.
func (s *Simulation) GenerationLength() int { return s.generationLength }

// Advance runs one world tick without evolving. It reports whether the
// generation's age has passed the generation length, in which case the
// caller must call Evolve before advancing again.
func (s *Simulation) Advance(rng *rand.Rand) (due bool) {
	s.world.Step(rng)
	s.age++
	return s.age > s.generationLength
}

// Step runs one tick. Once the generation's age passes the generation
// length the population is evolved and the statistics of the finished
// generation are returned with ok set.
func (s *Simulation) Step(rng *rand.Rand) (stats genetic.Statistics, ok bool) {
	if s.Advance(rng) {
		return s.Evolve(rng), true
	}
	return genetic.Statistics{}, false
}

// Train fast-forwards to the end of the current generation.
func (s *Simulation) Train(rng *rand.Rand) genetic.Statistics {
	for {
		if stats, ok := s.Step(rng); ok {
			return stats
		}
	}
}

// Evolve ends the current generation immediately: animals are bred into a
// new population, respawned at random and every food is scattered again.
//
// A generation where nobody ate anything gives the roulette wheel nothing to
// spin on, so every animal is then treated as equally fit.
func (s *Simulation) Evolve(rng *rand.Rand) genetic.Statistics {
	s.age = 0
	s.generation++

	agents := s.world.Agents()
	stats := genetic.NewStatistics(agents)

	parents := agents
	if stats.MaxFitness <= 0 {
		slog.Warn("no food eaten this generation, selecting uniformly",
			"generation", s.generation,
			"animals", len(agents),
		)
		parents = make([]*AnimalAgent, len(agents))
		for i, a := range agents {
			parents[i] = &AnimalAgent{fitness: 1, chromosome: a.chromosome}
		}
	}

	children, _ := s.ga.Evolve(rng, parents)

	brains := make([]*neural.Network, len(children))
	for i, child := range children {
		brain, err := neural.FromWeights(s.world.Topology(), child.Chromosome())
		if err != nil {
			// Crossover and mutation preserve chromosome length.
			panic(fmt.Sprintf("simulation: rebuilding brain %d: %v", i, err))
		}
		brains[i] = brain
	}

	s.world.respawn(rng, brains)

	return stats
}
