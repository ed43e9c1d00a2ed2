// Package genetic implements a generational genetic algorithm over
// flat real-valued chromosomes, with pluggable selection, crossover, and
// mutation strategies (spec.md §9 "capability polymorphism").
package genetic

// Chromosome is a fixed-length ordered sequence of genes. Its length is
// preserved across crossover and mutation.
type Chromosome struct {
	genes []float32
}

// NewChromosome copies genes into a new Chromosome.
func NewChromosome(genes []float32) Chromosome {
	return Chromosome{genes: append([]float32{}, genes...)}
}

// Len returns the number of genes.
func (c Chromosome) Len() int {
	return len(c.genes)
}

// At returns the gene at index i.
func (c Chromosome) At(i int) float32 {
	return c.genes[i]
}

// Set mutates the gene at index i in place.
func (c *Chromosome) Set(i int, v float32) {
	c.genes[i] = v
}

// Genes returns the underlying gene slice. Callers that only need to read
// should treat it as borrowed and not retain it past the Chromosome's
// mutation.
func (c Chromosome) Genes() []float32 {
	return c.genes
}
