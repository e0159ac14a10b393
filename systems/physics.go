// Package systems contains the per-tick ECS systems for the simulation.
//
// A tick runs, for each animal in turn, Motion, then Cognition, then Feeding.
// Later animals therefore see foods already relocated by earlier ones.
package systems

import (
	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/vecmath"
)

// Motion advances an animal along its heading.
type Motion struct {
	Bounds Bounds
}

// Update moves pos by speed along the heading and clamps it to the bounds.
func (m Motion) Update(pos *components.Position, rot components.Rotation, speed components.Speed) {
	dir := vecmath.FromAngle(rot.Heading)
	pos.Set(m.Bounds.Clamp(pos.Vec().Add(dir.Scale(speed.Value))))
}
