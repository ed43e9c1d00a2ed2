// Package rng defines the random-number capability every stochastic
// operation in this module consumes by argument, never as a process-wide
// singleton. Tests drive a Source deterministically; production code wires
// one backed by math/rand.
package rng

// Source is the abstract byte-generating collaborator required by the
// genetic algorithm and the simulation: uniform reals in a range, fair and
// weighted Bernoulli trials, weighted index choice, and a uniform point in
// the unit square.
type Source interface {
	// UniformFloat32 returns a value uniformly distributed in [lo, hi].
	UniformFloat32(lo, hi float32) float32

	// Bool returns true or false with equal probability.
	Bool() bool

	// BoolWithProbability returns true with probability p, p in [0, 1].
	BoolWithProbability(p float32) bool

	// WeightedIndex picks an index into weights with probability
	// proportional to weights[i] / sum(weights). weights must be
	// non-empty and contain at least one positive value.
	WeightedIndex(weights []float32) int

	// UnitSquarePoint returns a point uniformly distributed in [0, 1)^2.
	UnitSquarePoint() (x, y float32)
}
