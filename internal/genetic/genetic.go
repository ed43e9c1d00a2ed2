package genetic

import "github.com/matthewliu10/birdman/internal/rng"

// GeneticAlgorithm drives one generational step: selection, crossover, and
// mutation are pluggable strategies chosen at construction time, not a
// class hierarchy.
type GeneticAlgorithm struct {
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
}

// New builds a GeneticAlgorithm from its three strategies.
func New(selection SelectionMethod, crossover CrossoverMethod, mutation MutationMethod) *GeneticAlgorithm {
	return &GeneticAlgorithm{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
	}
}

// Evolve produces exactly len(population) children: for each child, select
// parent A, independently select parent B (A and B may coincide), cross
// them over, mutate the child in place, and wrap it via fromChromosome.
// rng consumption order is selection, crossover, mutation, child-major:
// child 0 is fully produced before child 1 starts.
func (ga *GeneticAlgorithm) Evolve(r rng.Source, population []Individual, fromChromosome FromChromosome) ([]Individual, Statistics) {
	if len(population) == 0 {
		panic("genetic: GeneticAlgorithm.Evolve: empty population")
	}

	stats := NewStatistics(population)

	offspring := make([]Individual, len(population))
	for i := range offspring {
		parentA := ga.selection.Select(r, population).ToChromosome()
		parentB := ga.selection.Select(r, population).ToChromosome()

		child := ga.crossover.Crossover(r, parentA, parentB)
		ga.mutation.Mutate(r, &child)

		offspring[i] = fromChromosome(child)
	}

	return offspring, stats
}
