package inspector

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/neural"
	"github.com/pthm-cable/flock/vecmath"
)

// OutputLabels name the brain outputs in order.
var OutputLabels = []string{"dSpeed", "dRot"}

// Network diagram colors.
var (
	ColorNodeInactive = rl.Color{R: 60, G: 60, B: 60, A: 255}
	ColorEdgePositive = rl.Color{R: 200, G: 80, B: 80, A: 100}
	ColorEdgeNegative = rl.Color{R: 80, G: 80, B: 200, A: 100}
	ColorLabelDim     = rl.Color{R: 120, G: 120, B: 120, A: 255}
)

// edgeThreshold hides connections too weak to matter in the diagram.
const edgeThreshold = 0.1

// LayerActivations runs inputs through nn and returns the values of every
// layer, inputs first. It returns nil when inputs do not fit the network.
func LayerActivations(nn *neural.Network, inputs []float32) [][]float32 {
	if nn == nil || len(inputs) == 0 {
		return nil
	}
	if len(nn.Layers) > 0 && len(inputs) != nn.InputSize() {
		return nil
	}

	acts := [][]float32{inputs}
	for _, layer := range nn.Layers {
		acts = append(acts, layer.Propagate(acts[len(acts)-1]))
	}
	return acts
}

// columnNodes spreads count nodes evenly over height, centered vertically.
func columnNodes(x, top, height float32, count int) []rl.Vector2 {
	nodes := make([]rl.Vector2, count)
	if count == 0 {
		return nodes
	}
	spacing := height / float32(count)
	for i := range nodes {
		nodes[i] = rl.Vector2{X: x, Y: top + spacing*(float32(i)+0.5)}
	}
	return nodes
}

// DrawNetworkDiagram draws one column per layer with weighted edges.
// Nodes are shaded by the activations from the animal's last tick.
func DrawNetworkDiagram(x, y, width, height int32, nn *neural.Network, inputs []float32) {
	if nn == nil || len(nn.Layers) == 0 {
		rl.DrawText("No network data", x+10, y+10, 14, ColorLabelDim)
		return
	}

	acts := LayerActivations(nn, inputs)

	sizes := []int{nn.InputSize()}
	for _, layer := range nn.Layers {
		sizes = append(sizes, len(layer.Neurons))
	}

	colWidth := float32(width) / float32(len(sizes))
	columns := make([][]rl.Vector2, len(sizes))
	for i, n := range sizes {
		columns[i] = columnNodes(float32(x)+colWidth*(float32(i)+0.5), float32(y), float32(height), n)
	}

	for l, layer := range nn.Layers {
		for j, neuron := range layer.Neurons {
			for k, w := range neuron.Weights {
				if abs(w) < edgeThreshold {
					continue
				}
				drawEdge(columns[l][k], columns[l+1][j], w)
			}
		}
	}

	nodeRadius := min(float32(6), float32(height)/float32(2*slicesMax(sizes)))
	for l, nodes := range columns {
		for i, pos := range nodes {
			var activation float32
			if acts != nil {
				activation = acts[l][i]
			}
			drawNode(pos, nodeRadius, activation)
		}
	}

	out := columns[len(columns)-1]
	for i, label := range OutputLabels {
		if i < len(out) {
			rl.DrawText(label, int32(out[i].X-nodeRadius)-rl.MeasureText(label, 10)-4, int32(out[i].Y)-12, 10, ColorLabelDim)
		}
	}
}

func slicesMax(xs []int) int {
	m := 1
	for _, v := range xs {
		m = max(m, v)
	}
	return m
}

// drawNode renders a single neuron node.
func drawNode(pos rl.Vector2, radius, activation float32) {
	rl.DrawCircleV(pos, radius, activationColor(activation))
	rl.DrawCircleLinesV(pos, radius, rl.Color{R: 100, G: 100, B: 100, A: 255})
}

// drawEdge renders a connection between nodes, thicker and more opaque for
// heavier weights.
func drawEdge(from, to rl.Vector2, weight float32) {
	thickness := vecmath.Clamp(abs(weight)*1.5, 0.5, 3)

	color := ColorEdgePositive
	if weight < 0 {
		color = ColorEdgeNegative
	}
	color.A = uint8(vecmath.Clamp(40+abs(weight)*40, 0, 150))

	rl.DrawLineEx(from, to, thickness, color)
}

// activationColor fades from gray to red as activation grows. ReLU units
// never go negative.
func activationColor(activation float32) rl.Color {
	if activation <= 0 {
		return ColorNodeInactive
	}
	t := min(activation, 1)
	return rl.Color{
		R: uint8(60 + t*195),
		G: uint8(60 - t*30),
		B: uint8(60 - t*30),
		A: 255,
	}
}

func abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
