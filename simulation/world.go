package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/genetic"
	"github.com/pthm-cable/flock/neural"
	"github.com/pthm-cable/flock/systems"
	"github.com/pthm-cable/flock/vecmath"
)

// Animal is a read-only snapshot of one animal.
type Animal struct {
	Position  vecmath.Vec2 `inspect:"label"`
	Rotation  float32      `inspect:"angle"`
	Speed     float32      `inspect:"label,fmt:%.5f"`
	Satiation int          `inspect:"label"`
	Vision    []float32    `inspect:"bar"`
}

// World holds the animals and foods of one simulation as ECS entities.
// Animals and foods are stepped in creation order, which never changes.
type World struct {
	world *ecs.World

	animalMap *ecs.Map6[
		components.Position,
		components.Rotation,
		components.Speed,
		components.Satiation,
		components.Brain,
		components.Vision,
	]
	foodMap        *ecs.Map2[components.Position, components.Food]
	satiationQuery *ecs.Filter1[components.Satiation]

	animals []ecs.Entity
	foods   []ecs.Entity

	// foodView mirrors food positions during a step.
	foodView []vecmath.Vec2

	eye          neural.Eye
	topology     neural.Topology
	initialSpeed float32
	bounds       systems.Bounds

	motion    systems.Motion
	cognition systems.Cognition
	feeding   systems.Feeding
}

// newWorld spawns animals one at a time, each drawing its brain from
// newBrain and then a random position and heading, followed by the foods.
func newWorld(cfg *config.Config, rng *rand.Rand, animals int, newBrain func(i int, topology neural.Topology) (*neural.Network, error)) (*World, error) {
	w := newEmptyWorld(cfg)

	for i := range animals {
		brain, err := newBrain(i, w.topology)
		if err != nil {
			return nil, fmt.Errorf("animal %d: %w", i, err)
		}
		w.spawnAnimal(rng, brain)
	}

	for range cfg.World.Foods {
		pos := components.Position{}
		pos.Set(w.bounds.Random(rng))
		w.foods = append(w.foods, w.foodMap.NewEntity(&pos, &components.Food{}))
	}
	w.foodView = make([]vecmath.Vec2, len(w.foods))

	return w, nil
}

func newEmptyWorld(cfg *config.Config) *World {
	world := ecs.NewWorld()

	eye := neural.NewEye(float32(cfg.Eye.FOVRange), float32(cfg.Eye.FOVAngle), cfg.Eye.Cells)
	bounds := systems.Bounds{Min: float32(cfg.World.MinCoord), Max: float32(cfg.World.MaxCoord)}

	return &World{
		world: world,
		animalMap: ecs.NewMap6[
			components.Position,
			components.Rotation,
			components.Speed,
			components.Satiation,
			components.Brain,
			components.Vision,
		](world),
		foodMap:        ecs.NewMap2[components.Position, components.Food](world),
		satiationQuery: ecs.NewFilter1[components.Satiation](world),

		eye:          eye,
		topology:     neural.BrainTopology(eye, cfg.Brain.HiddenLayers),
		initialSpeed: float32(cfg.Animal.InitialSpeed),
		bounds:       bounds,

		motion: systems.Motion{Bounds: bounds},
		cognition: systems.Cognition{Limits: systems.Limits{
			MinSpeed:    float32(cfg.Animal.MinSpeed),
			MaxSpeed:    float32(cfg.Animal.MaxSpeed),
			MaxAccel:    float32(cfg.Animal.MaxAccel),
			MaxRotation: float32(cfg.Animal.MaxRotation),
		}},
		feeding: systems.Feeding{Radius: float32(cfg.Animal.EatRadius), Bounds: bounds},
	}
}

// randomPlacement draws a position (x then y) and a heading in [-pi, pi].
func (w *World) randomPlacement(rng *rand.Rand) (components.Position, components.Rotation) {
	pos := components.Position{}
	pos.Set(w.bounds.Random(rng))
	rot := components.Rotation{Heading: -math.Pi + rng.Float32()*2*math.Pi}
	return pos, rot
}

func (w *World) spawnAnimal(rng *rand.Rand, brain *neural.Network) {
	pos, rot := w.randomPlacement(rng)
	speed := components.Speed{Value: w.initialSpeed}
	sat := components.Satiation{}
	b := components.Brain{Net: brain}
	vision := components.Vision{Eye: w.eye}

	w.animals = append(w.animals, w.animalMap.NewEntity(&pos, &rot, &speed, &sat, &b, &vision))
}

// Step advances every animal by one tick: motion, cognition and feeding for
// the first animal, then the second, and so on. It returns the number of
// foods eaten.
func (w *World) Step(rng *rand.Rand) int {
	for i, e := range w.foods {
		pos, _ := w.foodMap.Get(e)
		w.foodView[i] = pos.Vec()
	}

	eaten := 0
	for _, e := range w.animals {
		pos, rot, speed, sat, brain, vision := w.animalMap.Get(e)

		w.motion.Update(pos, *rot, *speed)
		w.cognition.Update(*pos, rot, speed, *brain, vision, w.foodView)
		eaten += w.feeding.Update(rng, *pos, sat, w.foodView)
	}

	for i, e := range w.foods {
		pos, _ := w.foodMap.Get(e)
		pos.Set(w.foodView[i])
	}

	return eaten
}

// Agents snapshots every animal as a genetic individual.
func (w *World) Agents() []*AnimalAgent {
	agents := make([]*AnimalAgent, len(w.animals))
	for i, e := range w.animals {
		_, _, _, sat, brain, _ := w.animalMap.Get(e)
		agents[i] = &AnimalAgent{
			fitness:    float32(sat.Count),
			chromosome: brain.Net.Chromosome(),
		}
	}
	return agents
}

// Chromosomes returns every animal's brain weights in animal order.
func (w *World) Chromosomes() []genetic.Chromosome {
	out := make([]genetic.Chromosome, len(w.animals))
	for i, e := range w.animals {
		_, _, _, _, brain, _ := w.animalMap.Get(e)
		out[i] = brain.Net.Chromosome()
	}
	return out
}

// respawn gives every animal a new brain, a fresh random placement, the
// initial speed and zero satiation, then scatters all foods.
func (w *World) respawn(rng *rand.Rand, brains []*neural.Network) {
	if len(brains) != len(w.animals) {
		panic(fmt.Sprintf("simulation: %d brains for %d animals", len(brains), len(w.animals)))
	}

	for i, e := range w.animals {
		pos, rot, speed, sat, brain, vision := w.animalMap.Get(e)
		*pos, *rot = w.randomPlacement(rng)
		speed.Value = w.initialSpeed
		sat.Count = 0
		brain.Net = brains[i]
		vision.Last = nil
	}

	for _, e := range w.foods {
		pos, _ := w.foodMap.Get(e)
		pos.Set(w.bounds.Random(rng))
	}
}

// Animals returns a snapshot of every animal in creation order.
func (w *World) Animals() []Animal {
	out := make([]Animal, len(w.animals))
	for i, e := range w.animals {
		pos, rot, speed, sat, _, vision := w.animalMap.Get(e)
		out[i] = Animal{
			Position:  pos.Vec(),
			Rotation:  rot.Heading,
			Speed:     speed.Value,
			Satiation: sat.Count,
			Vision:    vision.Last,
		}
	}
	return out
}

// Brain returns the brain of the i-th animal.
func (w *World) Brain(i int) *neural.Network {
	_, _, _, _, brain, _ := w.animalMap.Get(w.animals[i])
	return brain.Net
}

// Foods returns every food position in creation order.
func (w *World) Foods() []vecmath.Vec2 {
	out := make([]vecmath.Vec2, len(w.foods))
	for i, e := range w.foods {
		pos, _ := w.foodMap.Get(e)
		out[i] = pos.Vec()
	}
	return out
}

// Eaten returns how many foods all animals have eaten this generation.
func (w *World) Eaten() int {
	total := 0
	query := w.satiationQuery.Query()
	for query.Next() {
		total += query.Get().Count
	}
	return total
}

// Eye returns the eye every animal shares.
func (w *World) Eye() neural.Eye { return w.eye }

// Topology returns the brain shape every animal shares.
func (w *World) Topology() neural.Topology { return w.topology }
