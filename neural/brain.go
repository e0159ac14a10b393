package neural

// BrainOutputs is the output width of every brain: [Δspeed, Δrotation].
const BrainOutputs = 2

// BrainTopology returns the network shape for an eye: one input per eye cell,
// the hidden layers, and BrainOutputs outputs. With no hidden layers given a
// single hidden layer of twice the eye's cells is used.
func BrainTopology(eye Eye, hidden []int) Topology {
	if len(hidden) == 0 {
		hidden = []int{2 * eye.Cells()}
	}

	topology := make(Topology, 0, len(hidden)+2)
	topology = append(topology, eye.Cells())
	topology = append(topology, hidden...)
	topology = append(topology, BrainOutputs)
	return topology
}
