package genetic

import (
	"fmt"
	"math/rand/v2"
)

// CrossoverMethod combines two equal-length parents into a new child.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB Chromosome) Chromosome
}

// UniformCrossover takes each gene from either parent on a fair coin flip.
type UniformCrossover struct{}

// Crossover implements CrossoverMethod. It panics if the parents differ in length.
func (UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB Chromosome) Chromosome {
	if len(parentA) != len(parentB) {
		panic(fmt.Sprintf("genetic: crossover of chromosomes with lengths %d and %d", len(parentA), len(parentB)))
	}

	child := make(Chromosome, len(parentA))
	for i := range child {
		if coin(rng) {
			child[i] = parentA[i]
		} else {
			child[i] = parentB[i]
		}
	}
	return child
}

// coin is a fair boolean draw.
func coin(rng *rand.Rand) bool {
	return rng.Float64() < 0.5
}
