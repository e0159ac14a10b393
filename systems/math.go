package systems

import (
	"math/rand/v2"

	"github.com/pthm-cable/flock/vecmath"
)

// Bounds is the square every animal and food is kept inside.
type Bounds struct {
	Min, Max float32
}

// Clamp pulls v back inside the bounds, per axis.
func (b Bounds) Clamp(v vecmath.Vec2) vecmath.Vec2 {
	return v.Clamp(vecmath.Splat(b.Min), vecmath.Splat(b.Max))
}

// Random returns a uniformly distributed point inside the bounds. X is drawn
// before Y.
func (b Bounds) Random(rng *rand.Rand) vecmath.Vec2 {
	x := b.Min + rng.Float32()*(b.Max-b.Min)
	y := b.Min + rng.Float32()*(b.Max-b.Min)
	return vecmath.New(x, y)
}
