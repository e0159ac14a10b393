package genetic

import (
	"math/rand/v2"
)

// GeneticAlgorithm breeds a new generation of the same size from the old one.
// Each strategy is owned by the engine and can be swapped independently.
type GeneticAlgorithm[I Individual] struct {
	selection SelectionMethod[I]
	crossover CrossoverMethod
	mutation  MutationMethod
	create    Factory[I]
}

// New assembles an engine from its strategies and an individual factory.
func New[I Individual](
	selection SelectionMethod[I],
	crossover CrossoverMethod,
	mutation MutationMethod,
	create Factory[I],
) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
		create:    create,
	}
}

// Evolve returns len(population) children plus statistics of the input
// population. Children are built one slot at a time: two selections, one
// crossover, one mutation, so each child consumes its share of rng before
// the next begins. It panics on an empty population.
func (ga *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, Statistics) {
	if len(population) == 0 {
		panic("genetic: evolve empty population")
	}

	next := make([]I, len(population))
	for i := range next {
		parentA := ga.selection.Select(rng, population).Chromosome()
		parentB := ga.selection.Select(rng, population).Chromosome()

		child := ga.crossover.Crossover(rng, parentA, parentB)
		ga.mutation.Mutate(rng, child)

		next[i] = ga.create(child)
	}

	return next, NewStatistics(population)
}
