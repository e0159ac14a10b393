package systems

import (
	"fmt"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/neural"
	"github.com/pthm-cable/flock/vecmath"
)

// Limits bound how fast an animal may go and how much its brain may change
// its motion in a single tick.
type Limits struct {
	MinSpeed    float32
	MaxSpeed    float32
	MaxAccel    float32
	MaxRotation float32
}

// Cognition feeds what an animal sees through its brain and applies the
// result to its speed and heading.
type Cognition struct {
	Limits Limits
}

// Update runs the eye against foods, propagates the activations and adds the
// clamped outputs to speed and heading. The heading is left unwrapped.
func (c Cognition) Update(
	pos components.Position,
	rot *components.Rotation,
	speed *components.Speed,
	brain components.Brain,
	vision *components.Vision,
	foods []vecmath.Vec2,
) {
	vision.Last = vision.Eye.ProcessVision(pos.Vec(), rot.Heading, foods)

	response := brain.Net.Propagate(vision.Last)
	if len(response) != neural.BrainOutputs {
		panic(fmt.Sprintf("systems: brain produced %d outputs, want %d", len(response), neural.BrainOutputs))
	}

	accel := vecmath.Clamp(response[0], -c.Limits.MaxAccel, c.Limits.MaxAccel)
	turn := vecmath.Clamp(response[1], -c.Limits.MaxRotation, c.Limits.MaxRotation)

	speed.Value = vecmath.Clamp(speed.Value+accel, c.Limits.MinSpeed, c.Limits.MaxSpeed)
	rot.Heading += turn
}
