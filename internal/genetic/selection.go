package genetic

import (
	"sort"

	"github.com/matthewliu10/birdman/internal/rng"
)

// SelectionMethod picks one Individual from a non-empty population.
type SelectionMethod interface {
	Select(r rng.Source, population []Individual) Individual
}

// RouletteWheelSelection is fitness-proportionate selection: the
// probability of picking individual i is fitness(i) / sum(fitness).
// Requires at least one positive-fitness individual.
type RouletteWheelSelection struct{}

func (RouletteWheelSelection) Select(r rng.Source, population []Individual) Individual {
	if len(population) == 0 {
		panic("genetic: RouletteWheelSelection.Select: empty population")
	}
	weights := make([]float32, len(population))
	for i, ind := range population {
		weights[i] = ind.Fitness()
	}
	return population[r.WeightedIndex(weights)]
}

// uniformIndex picks an index in [0, n) with equal probability, expressed
// in terms of the rng.Source's weighted-choice capability so no separate
// "uniform integer" primitive needs to be added to the contract.
func uniformIndex(r rng.Source, n int) int {
	weights := make([]float32, n)
	for i := range weights {
		weights[i] = 1
	}
	return r.WeightedIndex(weights)
}

// TournamentSelection picks the fittest of Size uniformly-sampled
// candidates (with replacement), adapted from inlined-genetics's
// TournamentSelection.
type TournamentSelection struct {
	Size int
}

func (s TournamentSelection) Select(r rng.Source, population []Individual) Individual {
	if len(population) == 0 {
		panic("genetic: TournamentSelection.Select: empty population")
	}
	if s.Size < 1 {
		panic("genetic: TournamentSelection.Select: Size must be >= 1")
	}
	best := population[uniformIndex(r, len(population))]
	for i := 1; i < s.Size; i++ {
		contender := population[uniformIndex(r, len(population))]
		if contender.Fitness() > best.Fitness() {
			best = contender
		}
	}
	return best
}

// RankSelection gives each individual odds of selection proportional to
// its rank in fitness order rather than its raw fitness, adapted from
// inlined-genetics's RankedSelection. Useful when fitness magnitudes are
// skewed and roulette selection would starve most of the population.
type RankSelection struct{}

func (RankSelection) Select(r rng.Source, population []Individual) Individual {
	if len(population) == 0 {
		panic("genetic: RankSelection.Select: empty population")
	}
	order := make([]int, len(population))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return population[order[i]].Fitness() < population[order[j]].Fitness()
	})

	weights := make([]float32, len(population))
	for rank, idx := range order {
		weights[idx] = float32(rank + 1)
	}
	return population[r.WeightedIndex(weights)]
}
