// Package neural provides the fully-connected feed-forward networks that act as
// animal brains, plus the eye that turns the world into network inputs.
package neural

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/blas/blas32"
)

// Topology lists neuron counts per layer, input layer first.
// A topology of [9, 18, 2] builds two layers: 9->18 and 18->2.
type Topology []int

// ChromosomeLen returns how many weights (biases included) a network of this
// shape carries: the sum over adjacent layer pairs of (inputs+1)*outputs.
func (t Topology) ChromosomeLen() int {
	n := 0
	for i := 1; i < len(t); i++ {
		n += (t[i-1] + 1) * t[i]
	}
	return n
}

// Neuron is a single ReLU unit.
type Neuron struct {
	Bias    float32
	Weights []float32
}

// Layer is a set of neurons sharing the same inputs.
type Layer struct {
	Neurons []Neuron
}

// Network is a fully-connected feed-forward network of ReLU layers.
// The output size of layer i is the input size of layer i+1 by construction.
type Network struct {
	Layers []Layer
}

// NewNetwork wraps already-built layers.
func NewNetwork(layers []Layer) *Network {
	return &Network{Layers: layers}
}

// Random builds a network for topology with every bias and weight drawn
// uniformly from [-1, 1]. Draw order is layer by layer, neuron by neuron,
// bias first. A topology with fewer than two entries yields no layers.
func Random(rng *rand.Rand, topology Topology) *Network {
	var layers []Layer
	for i := 1; i < len(topology); i++ {
		layers = append(layers, randomLayer(rng, topology[i-1], topology[i]))
	}
	return &Network{Layers: layers}
}

func randomLayer(rng *rand.Rand, inputSize, outputSize int) Layer {
	neurons := make([]Neuron, outputSize)
	for i := range neurons {
		neurons[i] = randomNeuron(rng, inputSize)
	}
	return Layer{Neurons: neurons}
}

func randomNeuron(rng *rand.Rand, inputSize int) Neuron {
	bias := uniform(rng)
	weights := make([]float32, inputSize)
	for i := range weights {
		weights[i] = uniform(rng)
	}
	return Neuron{Bias: bias, Weights: weights}
}

// uniformSteps is the number of equal steps uniform divides [-1, 1] into.
const uniformSteps = 1 << 24

// uniform returns a value in [-1, 1], both ends included.
func uniform(rng *rand.Rand) float32 {
	return signedUnit(rng.Uint32N(uniformSteps + 1))
}

// signedUnit maps k in [0, uniformSteps] linearly onto [-1, 1].
func signedUnit(k uint32) float32 {
	return float32(k)/(uniformSteps/2) - 1
}

// InputSize returns the arity of the first layer, or 0 for an empty network.
func (nn *Network) InputSize() int {
	if len(nn.Layers) == 0 || len(nn.Layers[0].Neurons) == 0 {
		return 0
	}
	return len(nn.Layers[0].Neurons[0].Weights)
}

// OutputSize returns the neuron count of the last layer.
func (nn *Network) OutputSize() int {
	if len(nn.Layers) == 0 {
		return 0
	}
	return len(nn.Layers[len(nn.Layers)-1].Neurons)
}

// Propagate runs inputs through every layer and returns the last layer's
// output. len(inputs) must equal InputSize; a mismatch panics.
func (nn *Network) Propagate(inputs []float32) []float32 {
	out := inputs
	for i := range nn.Layers {
		out = nn.Layers[i].Propagate(out)
	}
	if len(nn.Layers) == 0 {
		return slices.Clone(inputs)
	}
	return out
}

// Propagate computes one output per neuron.
func (l *Layer) Propagate(inputs []float32) []float32 {
	outputs := make([]float32, len(l.Neurons))
	for i := range l.Neurons {
		outputs[i] = l.Neurons[i].Propagate(inputs)
	}
	return outputs
}

// Propagate returns max(0, bias + Σ inputs[i]*weights[i]).
func (n *Neuron) Propagate(inputs []float32) float32 {
	if len(inputs) != len(n.Weights) {
		panic(fmt.Sprintf("neural: got %d inputs, neuron expects %d", len(inputs), len(n.Weights)))
	}

	sum := blas32.Dot(
		blas32.Vector{N: len(inputs), Inc: 1, Data: inputs},
		blas32.Vector{N: len(n.Weights), Inc: 1, Data: n.Weights},
	)

	return relu(sum + n.Bias)
}

func relu(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}

// Weights yields every parameter in chromosome order: per layer, per neuron,
// the bias followed by its weights. Each call starts a fresh pass.
func (nn *Network) Weights() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, layer := range nn.Layers {
			for _, neuron := range layer.Neurons {
				if !yield(neuron.Bias) {
					return
				}
				for _, w := range neuron.Weights {
					if !yield(w) {
						return
					}
				}
			}
		}
	}
}

// Chromosome collects Weights into a flat slice.
func (nn *Network) Chromosome() []float32 {
	return slices.Collect(nn.Weights())
}

// Clone creates a deep copy of the network.
func (nn *Network) Clone() *Network {
	clone := &Network{Layers: make([]Layer, len(nn.Layers))}
	for i, layer := range nn.Layers {
		neurons := make([]Neuron, len(layer.Neurons))
		for j, n := range layer.Neurons {
			neurons[j] = Neuron{Bias: n.Bias, Weights: slices.Clone(n.Weights)}
		}
		clone.Layers[i] = Layer{Neurons: neurons}
	}
	return clone
}
