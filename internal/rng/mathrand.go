package rng

import "math/rand"

// MathRand is the default Source, backed by a *rand.Rand the way the
// teacher's training loop (internal/ai/genetic.go) drives mutation and
// selection off math/rand. Unlike the teacher, the generator is never the
// global source: callers own an instance and pass it explicitly, which is
// what lets Simulation.Step and GeneticAlgorithm.Evolve be replayed
// bit-for-bit in tests.
type MathRand struct {
	r *rand.Rand
}

// New creates a MathRand seeded deterministically.
func New(seed int64) *MathRand {
	return &MathRand{r: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing *rand.Rand, e.g. one seeded from crypto/rand
// entropy at process start.
func FromRand(r *rand.Rand) *MathRand {
	return &MathRand{r: r}
}

func (m *MathRand) UniformFloat32(lo, hi float32) float32 {
	if lo > hi {
		panic("rng: UniformFloat32: lo > hi")
	}
	return lo + m.r.Float32()*(hi-lo)
}

func (m *MathRand) Bool() bool {
	return m.r.Float32() < 0.5
}

func (m *MathRand) BoolWithProbability(p float32) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return m.r.Float32() < p
}

// WeightedIndex walks the cumulative distribution with a single uniform
// draw scaled by the total weight, the standard cumulative-probability-plus-
// uniform scheme.
func (m *MathRand) WeightedIndex(weights []float32) int {
	var total float32
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("rng: WeightedIndex: population has no positive-weight individual")
	}

	target := m.r.Float32() * total
	var cum float32
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	// Floating-point rounding may leave target >= cum after the last
	// bucket; fall back to the last index rather than panic.
	return len(weights) - 1
}

func (m *MathRand) UnitSquarePoint() (x, y float32) {
	return m.r.Float32(), m.r.Float32()
}
