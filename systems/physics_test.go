package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pthm-cable/flock/components"
)

var unitBounds = Bounds{Min: 0.05, Max: 0.95}

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestMotionUpdate(t *testing.T) {
	motion := Motion{Bounds: unitBounds}

	tests := []struct {
		name    string
		start   components.Position
		heading float32
		speed   float32
		wantX   float32
		wantY   float32
	}{
		{"east", components.Position{X: 0.5, Y: 0.5}, 0, 0.01, 0.51, 0.5},
		{"north", components.Position{X: 0.5, Y: 0.5}, math.Pi / 2, 0.01, 0.5, 0.51},
		{"west", components.Position{X: 0.5, Y: 0.5}, math.Pi, 0.01, 0.49, 0.5},
		{"unwrapped heading", components.Position{X: 0.5, Y: 0.5}, 2*math.Pi + math.Pi/2, 0.01, 0.5, 0.51},
		{"stopped", components.Position{X: 0.3, Y: 0.7}, 1.2, 0, 0.3, 0.7},
		{"clamped high", components.Position{X: 0.949, Y: 0.5}, 0, 0.01, 0.95, 0.5},
		{"clamped low", components.Position{X: 0.5, Y: 0.051}, -math.Pi / 2, 0.01, 0.5, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.start
			motion.Update(&pos, components.Rotation{Heading: tt.heading}, components.Speed{Value: tt.speed})

			if !approxEqual(pos.X, tt.wantX) || !approxEqual(pos.Y, tt.wantY) {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestBoundsRandom(t *testing.T) {
	rng := newRNG(42)
	b := Bounds{Min: 0.2, Max: 0.4}

	for range 1000 {
		p := b.Random(rng)
		if p.X < b.Min || p.X > b.Max || p.Y < b.Min || p.Y > b.Max {
			t.Fatalf("Random() = %+v outside [%v, %v]", p, b.Min, b.Max)
		}
	}

	a := b.Random(newRNG(7))
	c := b.Random(newRNG(7))
	if a != c {
		t.Errorf("same seed gave %+v and %+v", a, c)
	}
}
