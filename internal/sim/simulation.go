package sim

import (
	"github.com/matthewliu10/birdman/internal/genetic"
	"github.com/matthewliu10/birdman/internal/rng"
)

// Reference motion and generation-length constants.
const (
	SpeedAccel       = 0.02
	RotationAccel    = pi32 / 2
	GenerationLength = 2500
	collisionRadius  = 0.01
)

// Config wires up the population sizes and genetic operators a Simulation
// is built around. DefaultConfig reproduces the reference simulation.
type Config struct {
	NumAnimals int
	NumFoods   int
	Eye        Eye
	Selection  genetic.SelectionMethod
	Crossover  genetic.CrossoverMethod
	Mutation   genetic.MutationMethod
}

// DefaultConfig matches the reference simulation: roulette-wheel selection,
// uniform crossover, and a 1%-chance / 0.3-coefficient mutation — looser
// than the 50%/0.5 combination the genetic package's own scenario tests use,
// since a generation here runs thousands of ticks rather than a handful of
// synthetic rounds.
func DefaultConfig() Config {
	return Config{
		NumAnimals: DefaultNumAnimals,
		NumFoods:   DefaultNumFoods,
		Eye:        DefaultEye(),
		Selection:  genetic.RouletteWheelSelection{},
		Crossover:  genetic.UniformCrossover{},
		Mutation:   genetic.NewGaussianMutation(0.01, 0.3),
	}
}

// Simulation steps a World tick by tick, running the genetic algorithm at
// each generation boundary.
type Simulation struct {
	world         World
	ga            *genetic.GeneticAlgorithm
	eye           Eye
	age           int
	lastEvaluated []Animal
}

// NewSimulation builds a Simulation at the reference configuration.
func NewSimulation(r rng.Source) *Simulation {
	return NewSimulationWithConfig(r, DefaultConfig())
}

// NewSimulationWithConfig builds a Simulation with a caller-supplied
// population size, Eye, and genetic operators.
func NewSimulationWithConfig(r rng.Source, cfg Config) *Simulation {
	return &Simulation{
		world: NewWorld(r, cfg.NumAnimals, cfg.NumFoods, cfg.Eye),
		ga:    genetic.New(cfg.Selection, cfg.Crossover, cfg.Mutation),
		eye:   cfg.Eye,
		age:   0,
	}
}

// World exposes the current world state for read-only inspection.
func (s *Simulation) World() *World {
	return &s.world
}

// Age reports how many ticks have elapsed since the last generation
// boundary.
func (s *Simulation) Age() int {
	return s.age
}

// LastEvaluated returns the population as it stood at the most recent
// generation boundary, before evolve() replaced it — the Animals whose
// FoodEaten produced the Statistics that boundary's Step returned. Returns
// nil before the first generation boundary.
func (s *Simulation) LastEvaluated() []Animal {
	return s.lastEvaluated
}

// Step advances the simulation by one tick: collisions, then brains, then
// movement. It returns the Statistics of the generation that just ended, or
// nil if this tick did not cross a generation boundary.
func (s *Simulation) Step(r rng.Source) *genetic.Statistics {
	s.processCollisions(r)
	s.processBrains()
	s.processMovement()

	s.age++
	if s.age > GenerationLength {
		stats := s.evolve(r)
		s.age = 0
		return &stats
	}
	return nil
}

// Train runs Step in a loop until a full generation has elapsed, returning
// that generation's Statistics.
func (s *Simulation) Train(r rng.Source) genetic.Statistics {
	for {
		if stats := s.Step(r); stats != nil {
			return *stats
		}
	}
}

func (s *Simulation) processCollisions(r rng.Source) {
	for ai := range s.world.Animals {
		animal := &s.world.Animals[ai]
		for fi := range s.world.Foods {
			food := &s.world.Foods[fi]
			if distance(animal.Position, food.Position) <= collisionRadius {
				animal.FoodEaten++
				food.Position = randomFood(r).Position
			}
		}
	}
}

func (s *Simulation) processBrains() {
	for i := range s.world.Animals {
		animal := &s.world.Animals[i]
		vision := animal.Eye.ProcessVision(animal.Position, animal.Rotation, s.world.Foods)
		response := animal.Brain.Propagate(vision)

		deltaSpeed := clamp(response[0], -SpeedAccel, SpeedAccel)
		deltaRotation := clamp(response[1], -RotationAccel, RotationAccel)

		animal.Speed = clamp(animal.Speed+deltaSpeed, MinSpeed, MaxSpeed)
		animal.Rotation = wrapAngle(animal.Rotation + deltaRotation)
	}
}

func (s *Simulation) processMovement() {
	for i := range s.world.Animals {
		animal := &s.world.Animals[i]
		dx, dy := headingVector(animal.Rotation, animal.Speed)
		animal.Position.X = wrapUnit(animal.Position.X + dx)
		animal.Position.Y = wrapUnit(animal.Position.Y + dy)
	}
}

// headingVector rotates the forward vector (0, speed) by rotation radians:
// (-sin(rotation)*speed, cos(rotation)*speed).
func headingVector(rotation, speed float32) (dx, dy float32) {
	s, c := sincos32(rotation)
	return -s * speed, c * speed
}

func (s *Simulation) evolve(r rng.Source) genetic.Statistics {
	s.lastEvaluated = append([]Animal(nil), s.world.Animals...)

	individuals := make([]genetic.Individual, len(s.world.Animals))
	for i, animal := range s.world.Animals {
		individuals[i] = animalIndividualFromAnimal(animal)
	}

	nextGen, stats := s.ga.Evolve(r, individuals, animalIndividualFromChromosome)

	nextAnimals := make([]Animal, len(nextGen))
	for i, ind := range nextGen {
		nextAnimals[i] = ind.(AnimalIndividual).toAnimal(r, s.eye)
	}
	s.world.Animals = nextAnimals

	for i := range s.world.Foods {
		s.world.Foods[i] = randomFood(r)
	}

	return stats
}
