package genetic

import (
	"testing"

	"github.com/matthewliu10/birdman/internal/rng"
)

func unchanged(t *testing.T, chance, coeff float32) {
	t.Helper()
	c := NewChromosome([]float32{1, 2, 3, 4, 5, 6, 7})
	r := rng.New(1)

	NewGaussianMutation(chance, coeff).Mutate(r, &c)

	want := []float32{1, 2, 3, 4, 5, 6, 7}
	for i, g := range want {
		if c.At(i) != g {
			t.Errorf("gene %d changed to %v, want unchanged %v", i, c.At(i), g)
		}
	}
}

func TestGaussianMutation_ZeroChanceNeverChanges(t *testing.T) {
	unchanged(t, 0, 0)
	unchanged(t, 0, 1)
}

func TestGaussianMutation_ZeroCoeffNeverChanges(t *testing.T) {
	unchanged(t, 0.5, 0)
	unchanged(t, 1, 0)
}

func TestGaussianMutation_LengthPreserved(t *testing.T) {
	c := NewChromosome([]float32{1, 2, 3, 4, 5})
	r := rng.New(2)
	NewGaussianMutation(0.5, 1).Mutate(r, &c)
	if c.Len() != 5 {
		t.Errorf("expected length 5, got %d", c.Len())
	}
}

func TestGaussianMutation_MaxChanceBoundedByCoeff(t *testing.T) {
	original := []float32{1, 2, 3, 4, 5}
	c := NewChromosome(original)
	r := rng.New(3)
	const coeff = float32(0.5)
	NewGaussianMutation(1, coeff).Mutate(r, &c)

	for i, o := range original {
		delta := c.At(i) - o
		if delta < -coeff-1e-5 || delta > coeff+1e-5 {
			t.Errorf("gene %d delta %v exceeds +-%v", i, delta, coeff)
		}
	}
}

func TestUniformNoiseMutation_SameBehaviorAsGaussianMutation(t *testing.T) {
	a := NewChromosome([]float32{1, 2, 3})
	b := NewChromosome([]float32{1, 2, 3})

	NewGaussianMutation(0.5, 0.3).Mutate(rng.New(9), &a)
	NewUniformNoiseMutation(0.5, 0.3).Mutate(rng.New(9), &b)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Errorf("gene %d differs: %v vs %v", i, a.At(i), b.At(i))
		}
	}
}
