package genetic

import "github.com/matthewliu10/birdman/internal/rng"

// MutationMethod perturbs a chromosome in place.
type MutationMethod interface {
	Mutate(r rng.Source, c *Chromosome)
}

// GaussianMutation gates each gene with a Bernoulli(chance) trial and, on
// success, adds a uniform sample from [-coeff, +coeff]. The name is
// inherited terminology from the reference implementation: the
// perturbation itself is uniform, not Gaussian (spec.md §9). NewGaussianMutation
// and NewUniformNoiseMutation construct the identical type so both names
// stay available for API parity with callers that expect either.
type GaussianMutation struct {
	chance float32
	coeff  float32
}

// NewGaussianMutation constructs a mutation with the given gate probability
// and noise coefficient.
func NewGaussianMutation(chance, coeff float32) GaussianMutation {
	return GaussianMutation{chance: chance, coeff: coeff}
}

// NewUniformNoiseMutation is an honestly-named alias: the reference name
// "Gaussian" is kept for the type itself for API parity, but new call sites
// can spell out what the noise distribution actually is.
func NewUniformNoiseMutation(chance, coeff float32) GaussianMutation {
	return NewGaussianMutation(chance, coeff)
}

// Chance returns the per-gene mutation gate probability.
func (m GaussianMutation) Chance() float32 {
	return m.chance
}

// Coeff returns the noise coefficient bounding each mutated gene's delta.
func (m GaussianMutation) Coeff() float32 {
	return m.coeff
}

func (m GaussianMutation) Mutate(r rng.Source, c *Chromosome) {
	for i := 0; i < c.Len(); i++ {
		if r.BoolWithProbability(m.chance) {
			c.Set(i, c.At(i)+r.UniformFloat32(-m.coeff, m.coeff))
		}
	}
}
