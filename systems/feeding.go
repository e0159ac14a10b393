package systems

import (
	"math/rand/v2"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/vecmath"
)

// Feeding resolves animals reaching food.
type Feeding struct {
	Radius float32 // An animal eats food at or within this distance
	Bounds Bounds  // Eaten food respawns uniformly inside these
}

// Update checks every food in order against the animal at pos. Each food
// within reach is eaten: the animal's satiation goes up by one and the food is
// moved to a random point, which later foods in the same call never affect.
// It returns how many foods were eaten.
func (f Feeding) Update(rng *rand.Rand, pos components.Position, sat *components.Satiation, foods []vecmath.Vec2) int {
	at := pos.Vec()

	eaten := 0
	for i := range foods {
		if at.Distance(foods[i]) <= f.Radius {
			sat.Count++
			foods[i] = f.Bounds.Random(rng)
			eaten++
		}
	}
	return eaten
}
