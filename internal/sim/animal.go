package sim

import (
	"github.com/matthewliu10/birdman/internal/genetic"
	"github.com/matthewliu10/birdman/internal/rng"
)

// Reference speed bounds for every Animal, in units of the world per tick.
const (
	MinSpeed = 0.001
	MaxSpeed = 0.003
)

// Animal is a single foraging agent: a body (position, rotation, speed), a
// sensor (Eye), and a controller (Brain).
type Animal struct {
	Position  Point
	Rotation  float32
	Speed     float32
	Eye       Eye
	Brain     Brain
	FoodEaten int
}

func startingSpeed() float32 {
	return (MinSpeed + MaxSpeed) / 2
}

// RandomAnimal places an Animal at a random position and facing, wired to a
// freshly randomized Brain sized for eye.
func RandomAnimal(r rng.Source, eye Eye) Animal {
	return Animal{
		Position:  randomPoint(r),
		Rotation:  randomAngle(r),
		Speed:     startingSpeed(),
		Eye:       eye,
		Brain:     RandomBrain(r, eye.Cells()),
		FoodEaten: 0,
	}
}

// AnimalFromChromosome builds an Animal around a Brain decoded from a
// genome, placing it at a fresh random position and facing (only the Brain
// survives between generations; body state does not).
func AnimalFromChromosome(c genetic.Chromosome, r rng.Source, eye Eye) Animal {
	return Animal{
		Position:  randomPoint(r),
		Rotation:  randomAngle(r),
		Speed:     startingSpeed(),
		Eye:       eye,
		Brain:     BrainFromChromosome(eye.Cells(), c),
		FoodEaten: 0,
	}
}

// AsChromosome exposes the Animal's Brain as a genome, for handoff to the
// genetic algorithm.
func (a Animal) AsChromosome() genetic.Chromosome {
	return a.Brain.AsChromosome()
}

func randomPoint(r rng.Source) Point {
	x, y := r.UnitSquarePoint()
	return Point{X: x, Y: y}
}

func randomAngle(r rng.Source) float32 {
	return r.UniformFloat32(0, 2*pi32)
}
