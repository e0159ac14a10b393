// Package renderer draws the world with raylib: the arena, the foods and
// the animals.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/camera"
	"github.com/pthm-cable/flock/simulation"
	"github.com/pthm-cable/flock/vecmath"
)

// World colors.
var (
	ColorBackground = rl.Color{R: 12, G: 14, B: 18, A: 255}
	ColorArena      = rl.Color{R: 22, G: 26, B: 32, A: 255}
	ColorArenaEdge  = rl.Color{R: 60, G: 70, B: 80, A: 255}
	ColorFood       = rl.Color{R: 120, G: 220, B: 120, A: 255}
	ColorHungry     = rl.Color{R: 200, G: 200, B: 210, A: 255}
	ColorFed        = rl.Color{R: 255, G: 170, B: 60, A: 255}
	ColorHeading    = rl.Color{R: 255, G: 255, B: 255, A: 90}
)

// Body sizes in world units.
const (
	AnimalSize = 0.012
	FoodRadius = 0.004
)

// WorldRenderer draws a simulation world through a camera.
type WorldRenderer struct {
	// Satiation at which an animal is drawn fully fed.
	FedSatiation int
	// Draw a line along each animal's heading.
	ShowHeadings bool
}

// NewWorldRenderer creates a renderer.
func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{FedSatiation: 10}
}

// Draw renders the arena, then the foods, then the animals on top.
func (r *WorldRenderer) Draw(cam *camera.Camera, world *simulation.World) {
	rl.ClearBackground(ColorBackground)

	x0, y0 := cam.WorldToScreen(vecmath.New(0, 0))
	size := cam.Scale()
	rl.DrawRectangleV(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: size, Y: size}, ColorArena)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: size, Height: size}, 1, ColorArenaEdge)

	foodRadius := max(FoodRadius*size, 2)
	for _, f := range world.Foods() {
		sx, sy := cam.WorldToScreen(f)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, foodRadius, ColorFood)
	}

	for _, a := range world.Animals() {
		r.drawAnimal(cam, a)
	}
}

func (r *WorldRenderer) drawAnimal(cam *camera.Camera, a simulation.Animal) {
	tri := AnimalTriangle(a.Position, a.Rotation, AnimalSize)

	var pts [3]rl.Vector2
	for i, p := range tri {
		sx, sy := cam.WorldToScreen(p)
		pts[i] = rl.Vector2{X: sx, Y: sy}
	}
	rl.DrawTriangle(pts[0], pts[1], pts[2], r.animalColor(a.Satiation))

	if r.ShowHeadings {
		sx, sy := cam.WorldToScreen(a.Position)
		rl.DrawLineV(rl.Vector2{X: sx, Y: sy}, pts[0], ColorHeading)
	}
}

// animalColor shades animals from hungry to fed by satiation.
func (r *WorldRenderer) animalColor(satiation int) rl.Color {
	t := float32(1)
	if r.FedSatiation > 0 {
		t = vecmath.Clamp(float32(satiation)/float32(r.FedSatiation), 0, 1)
	}
	return rl.Color{
		R: uint8(float32(ColorHungry.R) + (float32(ColorFed.R)-float32(ColorHungry.R))*t),
		G: uint8(float32(ColorHungry.G) + (float32(ColorFed.G)-float32(ColorHungry.G))*t),
		B: uint8(float32(ColorHungry.B) + (float32(ColorFed.B)-float32(ColorHungry.B))*t),
		A: 255,
	}
}
