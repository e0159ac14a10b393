package neural

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestNeuronPropagate(t *testing.T) {
	neuron := Neuron{Bias: 0.5, Weights: []float32{-0.3, 0.8}}

	tests := []struct {
		name   string
		inputs []float32
		want   float32
	}{
		{"relu clamps negative", []float32{-10, -10}, 0},
		{"weighted sum plus bias", []float32{0.5, 1.0}, (-0.3 * 0.5) + (0.8 * 1.0) + 0.5},
		{"zero inputs yield bias", []float32{0, 0}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := neuron.Propagate(tt.inputs)
			if !approxEqual(got, tt.want) {
				t.Errorf("Propagate(%v) = %v, want %v", tt.inputs, got, tt.want)
			}
		})
	}
}

func TestNeuronPropagateLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on input length mismatch")
		}
	}()

	neuron := Neuron{Bias: 0, Weights: []float32{1, 2, 3}}
	neuron.Propagate([]float32{1, 2})
}

func TestLayerPropagate(t *testing.T) {
	layer := Layer{Neurons: []Neuron{
		{Bias: 0.0, Weights: []float32{0.1, 0.2, 0.3}},
		{Bias: 0.0, Weights: []float32{0.4, 0.5, 0.6}},
	}}

	got := layer.Propagate([]float32{0.5, 0.6, 0.7})
	want := []float32{0.05 + 0.12 + 0.21, 0.20 + 0.30 + 0.42}

	if len(got) != len(want) {
		t.Fatalf("got %d outputs, want %d", len(got), len(want))
	}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("output[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNetworkPropagate(t *testing.T) {
	hidden := Layer{Neurons: []Neuron{
		{Bias: 0.0, Weights: []float32{-0.5, -0.4, -0.3}},
		{Bias: 0.0, Weights: []float32{-0.2, -0.1, 0.0}},
	}}
	output := Layer{Neurons: []Neuron{
		{Bias: 0.0, Weights: []float32{-0.5, 0.5}},
	}}
	nn := NewNetwork([]Layer{hidden, output})

	inputs := []float32{0.5, 0.6, 0.7}
	got := nn.Propagate(inputs)
	want := output.Propagate(hidden.Propagate(inputs))

	if !slices.Equal(got, want) {
		t.Errorf("Propagate = %v, want %v", got, want)
	}
	if nn.InputSize() != 3 || nn.OutputSize() != 1 {
		t.Errorf("sizes = (%d, %d), want (3, 1)", nn.InputSize(), nn.OutputSize())
	}
}

func TestRandomShape(t *testing.T) {
	topology := Topology{3, 5, 2}
	nn := Random(newRNG(42), topology)

	if len(nn.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(nn.Layers))
	}
	for i, layer := range nn.Layers {
		if len(layer.Neurons) != topology[i+1] {
			t.Errorf("layer %d has %d neurons, want %d", i, len(layer.Neurons), topology[i+1])
		}
		for j, n := range layer.Neurons {
			if len(n.Weights) != topology[i] {
				t.Errorf("layer %d neuron %d has %d weights, want %d", i, j, len(n.Weights), topology[i])
			}
		}
	}

	for w := range nn.Weights() {
		if w < -1 || w > 1 {
			t.Errorf("weight %v outside [-1, 1]", w)
		}
	}
}

func TestSignedUnitCoversClosedRange(t *testing.T) {
	tests := []struct {
		k    uint32
		want float32
	}{
		{0, -1},
		{uniformSteps / 4, -0.5},
		{uniformSteps / 2, 0},
		{uniformSteps, 1},
	}

	for _, tt := range tests {
		if got := signedUnit(tt.k); got != tt.want {
			t.Errorf("signedUnit(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}

	rng := newRNG(21)
	for range 10000 {
		if v := uniform(rng); v < -1 || v > 1 {
			t.Fatalf("uniform returned %v outside [-1, 1]", v)
		}
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	topology := Topology{4, 8, 2}
	a := Random(newRNG(7), topology).Chromosome()
	b := Random(newRNG(7), topology).Chromosome()
	c := Random(newRNG(8), topology).Chromosome()

	if !slices.Equal(a, b) {
		t.Error("same seed produced different networks")
	}
	if slices.Equal(a, c) {
		t.Error("different seeds produced identical networks")
	}
}

func TestRandomSingleLayerTopology(t *testing.T) {
	nn := Random(newRNG(1), Topology{4})
	if len(nn.Layers) != 0 {
		t.Fatalf("got %d layers, want 0", len(nn.Layers))
	}

	inputs := []float32{1, 2, 3, 4}
	out := nn.Propagate(inputs)
	if !slices.Equal(out, inputs) {
		t.Errorf("empty network should pass inputs through, got %v", out)
	}
	out[0] = 99
	if inputs[0] != 1 {
		t.Error("empty network returned the caller's slice")
	}
}

func TestTopologyChromosomeLen(t *testing.T) {
	tests := []struct {
		name     string
		topology Topology
		want     int
	}{
		{"empty", Topology{}, 0},
		{"single", Topology{5}, 0},
		{"one layer", Topology{3, 2}, 8},
		{"brain", Topology{9, 18, 2}, 10*18 + 19*2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.topology.ChromosomeLen(); got != tt.want {
				t.Errorf("ChromosomeLen() = %d, want %d", got, tt.want)
			}
			nn := Random(newRNG(3), tt.topology)
			if got := len(nn.Chromosome()); got != tt.want {
				t.Errorf("len(Chromosome()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeightsOrder(t *testing.T) {
	nn := NewNetwork([]Layer{
		{Neurons: []Neuron{
			{Bias: 0.1, Weights: []float32{0.2, 0.3}},
			{Bias: 0.4, Weights: []float32{0.5, 0.6}},
		}},
		{Neurons: []Neuron{
			{Bias: 0.7, Weights: []float32{0.8, 0.9}},
		}},
	})

	want := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	if got := nn.Chromosome(); !slices.Equal(got, want) {
		t.Errorf("Chromosome() = %v, want %v", got, want)
	}

	// A fresh pass restarts from the first weight.
	var first []float32
	for w := range nn.Weights() {
		first = append(first, w)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(first, want[:2]) {
		t.Errorf("partial pass = %v, want %v", first, want[:2])
	}
}

func TestFromWeightsRoundTrip(t *testing.T) {
	topologies := []Topology{
		{3, 2},
		{4, 8, 2},
		{9, 18, 2},
		{2, 3, 3, 1},
	}

	for _, topology := range topologies {
		original := Random(newRNG(11), topology)
		weights := original.Chromosome()

		rebuilt, err := FromWeights(topology, weights)
		if err != nil {
			t.Fatalf("FromWeights(%v) error: %v", topology, err)
		}

		got := rebuilt.Chromosome()
		if !slices.Equal(got, weights) {
			t.Errorf("round trip for %v changed weights", topology)
		}

		inputs := make([]float32, topology[0])
		for i := range inputs {
			inputs[i] = float32(i) * 0.25
		}
		if !slices.Equal(original.Propagate(inputs), rebuilt.Propagate(inputs)) {
			t.Errorf("round trip for %v changed outputs", topology)
		}
	}
}

func TestFromWeightsErrors(t *testing.T) {
	topology := Topology{3, 2}
	full := make([]float32, topology.ChromosomeLen())

	tests := []struct {
		name    string
		weights []float32
		wantErr error
	}{
		{"empty", nil, ErrInsufficientWeights},
		{"one short", full[:len(full)-1], ErrInsufficientWeights},
		{"one extra", append(slices.Clone(full), 1), ErrExcessWeights},
		{"exact", full, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nn, err := FromWeights(topology, tt.weights)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if nn == nil {
					t.Fatal("nil network without error")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrInsufficientWeights) && errors.Is(err, ErrExcessWeights) {
				t.Error("error matches both conditions")
			}
		})
	}
}

func TestClone(t *testing.T) {
	nn := Random(newRNG(5), Topology{3, 4, 2})
	clone := nn.Clone()

	if !slices.Equal(nn.Chromosome(), clone.Chromosome()) {
		t.Fatal("clone differs from original")
	}

	clone.Layers[0].Neurons[0].Weights[0] += 1
	if slices.Equal(nn.Chromosome(), clone.Chromosome()) {
		t.Error("clone shares weight storage with original")
	}
}
