package sim

import (
	"github.com/matthewliu10/birdman/internal/genetic"
	"github.com/matthewliu10/birdman/internal/neural"
	"github.com/matthewliu10/birdman/internal/rng"
)

// Brain is an Animal's decision-making network: vision in, (delta speed,
// delta rotation) out.
type Brain struct {
	nn        neural.Network
	inputSize int
}

// BrainTopology returns the fixed three-layer shape used by every Brain:
// one input per eye cell, a hidden layer of twice that width, and two
// outputs (delta speed, delta rotation).
func BrainTopology(inputSize int) []int {
	return []int{inputSize, 2 * inputSize, 2}
}

// RandomBrain builds a Brain with randomly initialized weights.
func RandomBrain(r rng.Source, inputSize int) Brain {
	return Brain{nn: neural.RandomNetwork(r, BrainTopology(inputSize)), inputSize: inputSize}
}

// BrainFromChromosome reconstructs a Brain from a flattened weight genome.
func BrainFromChromosome(inputSize int, c genetic.Chromosome) Brain {
	return Brain{nn: neural.FromWeights(BrainTopology(inputSize), c.Genes()), inputSize: inputSize}
}

// AsChromosome flattens the Brain's weights into a genome.
func (b Brain) AsChromosome() genetic.Chromosome {
	return genetic.NewChromosome(b.nn.Weights())
}

// Propagate runs vision through the network, returning (delta speed, delta
// rotation) before clamping.
func (b Brain) Propagate(vision []float32) []float32 {
	return b.nn.Propagate(vision)
}

// BrainWeights is the gob-serializable form of a Brain: its topology and
// flattened weights, the minimum needed to reconstruct it with
// BrainFromWeights. Mirrors the teacher's networkData/Save/Load convention
// in spirit (one exported shape, encoded with encoding/gob), scoped to a
// single Brain rather than an entire population.
type BrainWeights struct {
	Topology []int
	Weights  []float32
}

// ExportBrain flattens a Brain into its serializable form.
func ExportBrain(b Brain) BrainWeights {
	return BrainWeights{
		Topology: BrainTopology(b.inputSize),
		Weights:  b.nn.Weights(),
	}
}

// BrainFromWeights reconstructs a Brain from its serializable form.
func BrainFromWeights(w BrainWeights) Brain {
	if len(w.Topology) < 1 {
		panic("sim: BrainFromWeights: topology must have at least one entry")
	}
	inputSize := w.Topology[0]
	return Brain{nn: neural.FromWeights(w.Topology, w.Weights), inputSize: inputSize}
}
