// Package genetic implements a generational genetic algorithm over flat
// float32 chromosomes: fitness-proportionate selection, uniform crossover and
// bounded additive mutation.
//
// Every operation draws from a *rand.Rand passed in by the caller, so a fixed
// seed and a fixed call order reproduce results exactly.
package genetic

// Chromosome is an individual's flat genotype.
type Chromosome []float32

// Individual is anything the algorithm can score and breed from.
// Population order carries no meaning; only Fitness ranks individuals.
type Individual interface {
	Fitness() float32
	Chromosome() Chromosome
}

// Factory builds a new individual from a child chromosome.
type Factory[I Individual] func(Chromosome) I
