package genetic

import "github.com/matthewliu10/birdman/internal/rng"

// CrossoverMethod combines two equal-length, non-empty parent chromosomes
// into one child chromosome.
type CrossoverMethod interface {
	Crossover(r rng.Source, a, b Chromosome) Chromosome
}

func checkParents(a, b Chromosome) {
	if a.Len() == 0 {
		panic("genetic: crossover: parent chromosome is empty")
	}
	if a.Len() != b.Len() {
		panic("genetic: crossover: parent chromosomes have unequal length")
	}
}

// UniformCrossover independently coin-flips each gene index, ascending,
// taking parent a's gene on true and parent b's on false.
type UniformCrossover struct{}

func (UniformCrossover) Crossover(r rng.Source, a, b Chromosome) Chromosome {
	checkParents(a, b)
	child := make([]float32, a.Len())
	for i := range child {
		if r.Bool() {
			child[i] = a.At(i)
		} else {
			child[i] = b.At(i)
		}
	}
	return NewChromosome(child)
}

// BlendCrossover averages the two parents gene-by-gene with an
// independently-drawn blend factor per gene, adapted from
// matheus3301-asteroids's blendCrossover: it preserves the general
// structure of both parents rather than discontinuously swapping whole
// genes, which matters more once genes are neural-network weights than it
// does for simple numeric chromosomes.
type BlendCrossover struct{}

func (BlendCrossover) Crossover(r rng.Source, a, b Chromosome) Chromosome {
	checkParents(a, b)
	child := make([]float32, a.Len())
	for i := range child {
		alpha := r.UniformFloat32(0, 1)
		child[i] = alpha*a.At(i) + (1-alpha)*b.At(i)
	}
	return NewChromosome(child)
}
