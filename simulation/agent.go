package simulation

import "github.com/pthm-cable/flock/genetic"

// AnimalAgent is an animal as the genetic algorithm sees it: its brain
// weights and the food it ate.
type AnimalAgent struct {
	fitness    float32
	chromosome genetic.Chromosome
}

// NewAnimalAgent wraps a freshly bred chromosome. It starts with no fitness.
func NewAnimalAgent(chromosome genetic.Chromosome) *AnimalAgent {
	return &AnimalAgent{chromosome: chromosome}
}

// Fitness returns the number of foods eaten.
func (a *AnimalAgent) Fitness() float32 { return a.fitness }

// Chromosome returns the flattened brain weights.
func (a *AnimalAgent) Chromosome() genetic.Chromosome { return a.chromosome }
