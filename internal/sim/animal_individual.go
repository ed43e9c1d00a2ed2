package sim

import (
	"github.com/matthewliu10/birdman/internal/genetic"
	"github.com/matthewliu10/birdman/internal/rng"
)

// AnimalIndividual adapts an Animal to genetic.Individual: its chromosome is
// the Animal's Brain weights, its fitness is the count of food it ate this
// generation.
type AnimalIndividual struct {
	chromosome genetic.Chromosome
	fitness    float32
}

func animalIndividualFromAnimal(a Animal) AnimalIndividual {
	return AnimalIndividual{
		chromosome: a.AsChromosome(),
		fitness:    float32(a.FoodEaten),
	}
}

// animalIndividualFromChromosome satisfies genetic.FromChromosome: it wraps
// an offspring genome with the zero fitness a not-yet-evaluated individual
// starts with.
func animalIndividualFromChromosome(c genetic.Chromosome) genetic.Individual {
	return AnimalIndividual{chromosome: c, fitness: 0}
}

func (ind AnimalIndividual) toAnimal(r rng.Source, eye Eye) Animal {
	return AnimalFromChromosome(ind.chromosome, r, eye)
}

// Fitness implements genetic.Individual.
func (ind AnimalIndividual) Fitness() float32 {
	return ind.fitness
}

// ToChromosome implements genetic.Individual.
func (ind AnimalIndividual) ToChromosome() genetic.Chromosome {
	return ind.chromosome
}
