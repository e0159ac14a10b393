// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/flock/neural"

// Satiation counts the foods an animal has eaten this generation.
// It doubles as the animal's fitness.
type Satiation struct {
	Count int `inspect:"label"`
}

// Brain holds the network that turns eye activations into
// [speed change, rotation change].
type Brain struct {
	Net *neural.Network `inspect:"skip"`
}

// Vision holds the animal's eye and the activations it produced on the
// last tick, kept for inspection.
type Vision struct {
	Eye  neural.Eye `inspect:"skip"`
	Last []float32  `inspect:"bar"`
}

// Food tags an entity as a food pellet.
type Food struct{}
