package neural

import "github.com/matthewliu10/birdman/internal/rng"

// Network is an ordered sequence of layers. A topology is [s0, s1, ..., sL]
// with s0 the input width and each subsequent si the neuron count of layer
// i-1 (whose input width is s[i-1]).
type Network struct {
	layers []Layer
}

// RandomNetwork builds one Layer per adjacent pair in topology.
func RandomNetwork(r rng.Source, topology []int) Network {
	if len(topology) < 2 {
		panic("neural: RandomNetwork: topology must have at least 2 entries")
	}
	layers := make([]Layer, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		layers[i-1] = RandomLayer(r, topology[i-1], topology[i])
	}
	return Network{layers: layers}
}

// FromWeights reconstructs a Network of the given topology from a flat
// weight vector; it panics if the vector's length doesn't exactly match
// the topology's expected parameter count.
func FromWeights(topology []int, flat []float32) Network {
	if len(topology) < 2 {
		panic("neural: FromWeights: topology must have at least 2 entries")
	}
	if len(flat) != ExpectedWeightCount(topology) {
		panic("neural: FromWeights: flat weight length mismatch")
	}

	src := &weightCursor{data: flat}
	layers := make([]Layer, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		layers[i-1] = layerFromWeights(topology[i-1], topology[i], src)
	}
	return Network{layers: layers}
}

// ExpectedWeightCount returns sum over i in [1, L] of si*(s[i-1]+1), the
// total scalar parameter count for a topology.
func ExpectedWeightCount(topology []int) int {
	total := 0
	for i := 1; i < len(topology); i++ {
		total += topology[i] * (topology[i-1] + 1)
	}
	return total
}

// Propagate folds the layers left to right; len(inputs) must equal
// topology[0].
func (n Network) Propagate(inputs []float32) []float32 {
	current := inputs
	for _, layer := range n.layers {
		current = layer.Propagate(current)
	}
	return current
}

// Weights is the layer-major concatenation of the network's flat weights.
func (n Network) Weights() []float32 {
	out := make([]float32, 0)
	for _, l := range n.layers {
		out = append(out, l.Weights()...)
	}
	return out
}
