package renderer

import "github.com/pthm-cable/flock/vecmath"

// AnimalTriangle returns the corners of an animal's body: the nose ahead
// along heading and two tail corners behind it. Corners are ordered for
// counter-clockwise winding on a Y-down screen.
func AnimalTriangle(center vecmath.Vec2, heading, size float32) [3]vecmath.Vec2 {
	nose := center.Add(vecmath.FromAngle(heading).Scale(size))
	left := center.Add(vecmath.FromAngle(heading - 2.4).Scale(size * 0.7))
	right := center.Add(vecmath.FromAngle(heading + 2.4).Scale(size * 0.7))
	return [3]vecmath.Vec2{nose, left, right}
}
