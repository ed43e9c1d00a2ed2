package sim

import "github.com/matthewliu10/birdman/internal/rng"

// Reference population sizes for a freshly randomized World.
const (
	DefaultNumAnimals = 40
	DefaultNumFoods   = 60
)

// World is the container of everything a Simulation steps: the animal
// population and the food scattered for them to find.
type World struct {
	Animals []Animal
	Foods   []Food
}

// RandomWorld builds a World at the reference population sizes with the
// default Eye.
func RandomWorld(r rng.Source) World {
	return NewWorld(r, DefaultNumAnimals, DefaultNumFoods, DefaultEye())
}

// NewWorld builds a World with the given population sizes and Eye,
// panicking if either size is non-positive.
func NewWorld(r rng.Source, numAnimals, numFoods int, eye Eye) World {
	if numAnimals < 1 {
		panic("sim: NewWorld: numAnimals must be at least 1")
	}
	if numFoods < 1 {
		panic("sim: NewWorld: numFoods must be at least 1")
	}

	animals := make([]Animal, numAnimals)
	for i := range animals {
		animals[i] = RandomAnimal(r, eye)
	}
	foods := make([]Food, numFoods)
	for i := range foods {
		foods[i] = randomFood(r)
	}
	return World{Animals: animals, Foods: foods}
}
