package neural

import "github.com/matthewliu10/birdman/internal/rng"

// Layer is an ordered sequence of neurons that all share the same input
// width.
type Layer struct {
	neurons []Neuron
}

// RandomLayer constructs numNeurons neurons in order; each neuron fully
// consumes the rng (bias then weights) before the next is sampled.
func RandomLayer(r rng.Source, inputSize, numNeurons int) Layer {
	neurons := make([]Neuron, numNeurons)
	for i := range neurons {
		neurons[i] = RandomNeuron(r, inputSize)
	}
	return Layer{neurons: neurons}
}

// Propagate returns each neuron's output, in order.
func (l Layer) Propagate(inputs []float32) []float32 {
	out := make([]float32, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Propagate(inputs)
	}
	return out
}

// Weights is the neuron-major concatenation of each neuron's weights.
func (l Layer) Weights() []float32 {
	out := make([]float32, 0)
	for _, n := range l.neurons {
		out = append(out, n.Weights()...)
	}
	return out
}

func layerFromWeights(inputSize, numNeurons int, src *weightCursor) Layer {
	neurons := make([]Neuron, numNeurons)
	for i := range neurons {
		neurons[i] = neuronFromWeights(inputSize, src)
	}
	return Layer{neurons: neurons}
}
