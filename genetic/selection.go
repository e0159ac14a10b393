package genetic

import (
	"math/rand/v2"
)

// SelectionMethod picks one parent from a population.
type SelectionMethod[I Individual] interface {
	// Select returns a member of population, never a copy.
	Select(rng *rand.Rand, population []I) I
}

// RouletteWheelSelection picks individuals with probability proportional to
// their fitness by rejection sampling: draw a uniform candidate, accept it
// with probability fitness/total, repeat.
//
// The population must be non-empty and its total fitness positive; both are
// checked up front and panic, since with zero total fitness the sampling loop
// would never accept anyone.
type RouletteWheelSelection[I Individual] struct{}

// Select implements SelectionMethod.
func (RouletteWheelSelection[I]) Select(rng *rand.Rand, population []I) I {
	if len(population) == 0 {
		panic("genetic: select from empty population")
	}

	var total float32
	for _, ind := range population {
		total += ind.Fitness()
	}
	if !(total > 0) {
		panic("genetic: roulette selection needs positive total fitness")
	}

	for {
		candidate := population[rng.IntN(len(population))]
		share := float64(candidate.Fitness() / total)
		if rng.Float64() < share {
			return candidate
		}
	}
}
