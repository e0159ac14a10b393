package components

import "github.com/pthm-cable/flock/vecmath"

// Position is an entity's location in the unit square.
type Position struct {
	X, Y float32 `inspect:"label,fmt:%.3f"`
}

// Vec returns the position as a vector.
func (p Position) Vec() vecmath.Vec2 {
	return vecmath.New(p.X, p.Y)
}

// Set moves the entity to v.
func (p *Position) Set(v vecmath.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Rotation is an animal's heading. It is never wrapped; trigonometry
// handles angles outside (-pi, pi].
type Rotation struct {
	Heading float32 `inspect:"angle"` // radians
}

// Speed is the distance an animal covers per tick along its heading.
type Speed struct {
	Value float32 `inspect:"bar,max:0.005,fmt:%.5f"`
}
