// Package neural implements the feed-forward network that serves as an
// animal's brain: random initialization, forward propagation, and flat
// weight-vector import/export so a network can round-trip through a
// genetic-algorithm chromosome.
package neural

import "github.com/matthewliu10/birdman/internal/rng"

// Neuron is a single ReLU unit: a bias plus one weight per input.
type Neuron struct {
	bias    float32
	weights []float32
}

// NewNeuron builds a Neuron from an explicit bias and weight vector.
func NewNeuron(bias float32, weights []float32) Neuron {
	return Neuron{bias: bias, weights: append([]float32{}, weights...)}
}

// RandomNeuron samples bias and each of inputSize weights uniformly from
// [-1, 1], bias first.
func RandomNeuron(r rng.Source, inputSize int) Neuron {
	bias := r.UniformFloat32(-1, 1)
	weights := make([]float32, inputSize)
	for i := range weights {
		weights[i] = r.UniformFloat32(-1, 1)
	}
	return Neuron{bias: bias, weights: weights}
}

// Propagate computes max(0, bias + sum(inputs[i] * weights[i])).
func (n Neuron) Propagate(inputs []float32) float32 {
	if len(inputs) != len(n.weights) {
		panic("neural: Neuron.Propagate: input width mismatch")
	}
	sum := n.bias
	for i, in := range inputs {
		sum += in * n.weights[i]
	}
	if sum < 0 {
		return 0
	}
	return sum
}

// Weights emits [bias, w0, ..., w(n-1)].
func (n Neuron) Weights() []float32 {
	out := make([]float32, 0, len(n.weights)+1)
	out = append(out, n.bias)
	out = append(out, n.weights...)
	return out
}

// neuronFromWeights consumes inputSize+1 values from src, bias first, and
// panics if src is exhausted first.
func neuronFromWeights(inputSize int, src *weightCursor) Neuron {
	bias := src.next()
	weights := make([]float32, inputSize)
	for i := range weights {
		weights[i] = src.next()
	}
	return Neuron{bias: bias, weights: weights}
}

// weightCursor walks a flat weight slice left to right, panicking on
// underrun so from_weights callers get a clear contract-violation message
// instead of an index-out-of-range.
type weightCursor struct {
	data []float32
	pos  int
}

func (c *weightCursor) next() float32 {
	if c.pos >= len(c.data) {
		panic("neural: from_weights: not enough weights")
	}
	v := c.data[c.pos]
	c.pos++
	return v
}
