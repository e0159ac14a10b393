package neural

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientWeights means the source ran out before every neuron was filled.
	ErrInsufficientWeights = errors.New("neural: insufficient weights")
	// ErrExcessWeights means values were left over after the last neuron was filled.
	ErrExcessWeights = errors.New("neural: excess weights")
)

// weightCursor walks a flat weight slice and tracks how far it got, so
// running short and running over are reported where they happen.
type weightCursor struct {
	data []float32
	pos  int
}

func (c *weightCursor) next() (float32, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	v := c.data[c.pos]
	c.pos++
	return v, true
}

func (c *weightCursor) remaining() int {
	return len(c.data) - c.pos
}

// FromWeights rebuilds a network for topology from a flat chromosome laid out
// the way Weights produces it. It is the exact inverse of Weights.
func FromWeights(topology Topology, weights []float32) (*Network, error) {
	cur := &weightCursor{data: weights}

	var layers []Layer
	for i := 1; i < len(topology); i++ {
		layer, err := layerFromWeights(cur, i-1, topology[i-1], topology[i])
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}

	if n := cur.remaining(); n > 0 {
		return nil, fmt.Errorf("%w: %d left after %d consumed", ErrExcessWeights, n, cur.pos)
	}

	return &Network{Layers: layers}, nil
}

func layerFromWeights(cur *weightCursor, layerIdx, inputSize, outputSize int) (Layer, error) {
	neurons := make([]Neuron, outputSize)
	for j := range neurons {
		bias, ok := cur.next()
		if !ok {
			return Layer{}, fmt.Errorf("%w: layer %d neuron %d bias", ErrInsufficientWeights, layerIdx, j)
		}

		ws := make([]float32, inputSize)
		for k := range ws {
			w, ok := cur.next()
			if !ok {
				return Layer{}, fmt.Errorf("%w: layer %d neuron %d weight %d", ErrInsufficientWeights, layerIdx, j, k)
			}
			ws[k] = w
		}

		neurons[j] = Neuron{Bias: bias, Weights: ws}
	}
	return Layer{Neurons: neurons}, nil
}
