package neural

import (
	"fmt"
	"math"

	"github.com/pthm-cable/flock/vecmath"
)

// Default eye parameters.
const (
	DefaultFOVRange = 0.25
	DefaultFOVAngle = math.Pi + math.Pi/4
	DefaultCells    = 9
)

// angleTolerance widens the field of view slightly so foods sitting exactly
// on its edge are not lost to rounding.
const angleTolerance = 0.001

// Eye partitions a field of view in front of an animal into equal angular
// cells. It is immutable once built.
type Eye struct {
	fovRange float32
	fovAngle float32
	cells    int
}

// NewEye panics unless every parameter is positive.
func NewEye(fovRange, fovAngle float32, cells int) Eye {
	if !(fovRange > 0 && fovAngle > 0 && cells > 0) {
		panic(fmt.Sprintf("neural: invalid eye (range=%v angle=%v cells=%d)", fovRange, fovAngle, cells))
	}
	return Eye{fovRange: fovRange, fovAngle: fovAngle, cells: cells}
}

// DefaultEye returns the eye used when nothing is configured.
func DefaultEye() Eye {
	return NewEye(DefaultFOVRange, DefaultFOVAngle, DefaultCells)
}

// FOVRange returns how far the eye can see.
func (e Eye) FOVRange() float32 { return e.fovRange }

// FOVAngle returns the total angular width of the field of view.
func (e Eye) FOVAngle() float32 { return e.fovAngle }

// Cells returns the number of angular bins.
func (e Eye) Cells() int { return e.cells }

// ProcessVision returns one activation per cell for an animal at position
// facing rotation. Each food within range and inside the field of view adds
// (range-distance)/range to the cell its bearing falls into; cell 0 is the
// most clockwise-negative bearing. Activations are not capped.
func (e Eye) ProcessVision(position vecmath.Vec2, rotation float32, foods []vecmath.Vec2) []float32 {
	cells := make([]float32, e.cells)
	fovAngle := e.fovAngle + angleTolerance

	for _, food := range foods {
		vec := food.Sub(position)
		distance := vec.Length()
		if distance >= e.fovRange {
			continue
		}

		// Bearing relative to heading, shifted so the field spans [0, fovAngle].
		angle := vecmath.WrapAngle(vec.Angle()-rotation) + fovAngle/2
		if angle < 0 || angle > fovAngle {
			continue
		}

		cell := int(angle / fovAngle * float32(e.cells))
		if cell >= e.cells {
			cell = e.cells - 1
		}

		cells[cell] += (e.fovRange - distance) / e.fovRange
	}

	return cells
}
