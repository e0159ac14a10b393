package genetic

import (
	"fmt"
	"math/rand/v2"
)

// MutationMethod perturbs a child chromosome in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, child Chromosome)
}

// GaussianMutation nudges each gene, with probability Chance, by
// ±Coeff*U where U is uniform in [0, 1). Despite the name the step is
// bounded and uniform, not normally distributed; a gene never moves by
// more than Coeff.
type GaussianMutation struct {
	chance float32
	coeff  float32
}

// NewGaussianMutation panics if chance is outside [0, 1] or coeff is negative.
func NewGaussianMutation(chance, coeff float32) GaussianMutation {
	if !(chance >= 0 && chance <= 1) {
		panic(fmt.Sprintf("genetic: mutation chance %v outside [0, 1]", chance))
	}
	if !(coeff >= 0) {
		panic(fmt.Sprintf("genetic: negative mutation coefficient %v", coeff))
	}
	return GaussianMutation{chance: chance, coeff: coeff}
}

// Chance returns the per-gene mutation probability.
func (m GaussianMutation) Chance() float32 { return m.chance }

// Coeff returns the maximum step size.
func (m GaussianMutation) Coeff() float32 { return m.coeff }

// Mutate implements MutationMethod. Per gene it draws the sign, then the
// chance roll, then the magnitude only when the roll succeeds.
func (m GaussianMutation) Mutate(rng *rand.Rand, child Chromosome) {
	for i := range child {
		sign := float32(1)
		if coin(rng) {
			sign = -1
		}

		if rng.Float64() < float64(m.chance) {
			if delta := sign * m.coeff * rng.Float32(); delta != 0 {
				child[i] += delta
			}
		}
	}
}
