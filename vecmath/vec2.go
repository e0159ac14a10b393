// Package vecmath provides the small float32 2D vector type used for world
// positions and headings.
package vecmath

import "math"

// Vec2 is a point or direction in the unit world.
type Vec2 struct {
	X, Y float32
}

// New returns the vector (x, y).
func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// FromAngle returns the unit vector pointing along angle (radians).
func FromAngle(angle float32) Vec2 {
	return Vec2{
		X: float32(math.Cos(float64(angle))),
		Y: float32(math.Sin(float64(angle))),
	}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Length()
}

// Clamp clamps each component of v to [lo, hi] of the matching component.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{X: clamp(v.X, lo.X, hi.X), Y: clamp(v.Y, lo.Y, hi.Y)}
}

// Angle returns the direction of v in radians, in [-π, π].
func (v Vec2) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// AngleTo returns the signed angle that rotates v onto o, wrapped to (-π, π].
func (v Vec2) AngleTo(o Vec2) float32 {
	return WrapAngle(o.Angle() - v.Angle())
}

// WrapAngle wraps angle into (-π, π].
func WrapAngle(angle float32) float32 {
	a := math.Mod(float64(angle)+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return float32(a - math.Pi)
}

// Clamp clamps x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return clamp(x, lo, hi)
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
