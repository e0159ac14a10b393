package simulation

import (
	"math"
	"testing"

	"github.com/pthm-cable/flock/neural"
)

func TestWorldStepKeepsAnimalsInBounds(t *testing.T) {
	cfg := testConfig(t)
	rng := newRNG(21)
	sim := Random(cfg, rng)

	for range 2000 {
		sim.World().Step(rng)
	}

	for i, a := range sim.World().Animals() {
		if a.Position.X < 0.05 || a.Position.X > 0.95 || a.Position.Y < 0.05 || a.Position.Y > 0.95 {
			t.Errorf("animal %d escaped to %+v", i, a.Position)
		}
		if a.Speed < float32(cfg.Animal.MinSpeed) || a.Speed > float32(cfg.Animal.MaxSpeed) {
			t.Errorf("animal %d speed %v outside limits", i, a.Speed)
		}
		if len(a.Vision) != cfg.Eye.Cells {
			t.Errorf("animal %d recorded %d activations, want %d", i, len(a.Vision), cfg.Eye.Cells)
		}
	}
	for i, f := range sim.World().Foods() {
		if f.X < 0.05 || f.X > 0.95 || f.Y < 0.05 || f.Y > 0.95 {
			t.Errorf("food %d outside bounds at %+v", i, f)
		}
	}
}

func TestWorldStepFeedsAnimals(t *testing.T) {
	cfg := testConfig(t)
	cfg.World.Foods = 1
	cfg.Animal.InitialSpeed = 0

	rng := newRNG(4)
	w, err := newWorld(cfg, rng, 1, func(_ int, topology neural.Topology) (*neural.Network, error) {
		return neural.Random(rng, topology), nil
	})
	if err != nil {
		t.Fatalf("newWorld error: %v", err)
	}

	// Motion runs before the brain, so an animal starting at zero speed
	// stays put for its first tick. Drop the only food right on it.
	animal := w.Animals()[0]
	pos, _ := w.foodMap.Get(w.foods[0])
	pos.Set(animal.Position)

	eaten := w.Step(rng)
	if eaten != 1 {
		t.Fatalf("Step ate %d foods, want 1", eaten)
	}
	if got := w.Animals()[0].Satiation; got != 1 {
		t.Errorf("satiation = %d, want 1", got)
	}
	if w.Eaten() != 1 {
		t.Errorf("Eaten() = %d, want 1", w.Eaten())
	}
	if f := w.Foods()[0]; f == animal.Position {
		t.Error("eaten food was not relocated")
	}
}

func TestWorldRespawnPanicsOnWrongCount(t *testing.T) {
	cfg := testConfig(t)
	rng := newRNG(1)
	sim := Random(cfg, rng)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	sim.World().respawn(rng, nil)
}

func TestWorldSharesEye(t *testing.T) {
	cfg := testConfig(t)
	sim := Random(cfg, newRNG(1))

	eye := sim.World().Eye()
	if eye.Cells() != cfg.Eye.Cells {
		t.Errorf("eye has %d cells, want %d", eye.Cells(), cfg.Eye.Cells)
	}
	if math.Abs(float64(eye.FOVRange())-cfg.Eye.FOVRange) > 1e-6 {
		t.Errorf("eye range %v, want %v", eye.FOVRange(), cfg.Eye.FOVRange)
	}
	if got := sim.World().Topology().ChromosomeLen(); got != cfg.Derived.ChromosomeLen {
		t.Errorf("topology needs %d genes, config derived %d", got, cfg.Derived.ChromosomeLen)
	}
}
