// Command inspect loads a saved brain's weights, drops it into a freshly
// randomized world, and prints the resulting world/animal/food state as
// text — the read-only inspection surface spec.md leaves for an external
// rendering collaborator, minus any actual rendering.
package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/matthewliu10/birdman/internal/config"
	"github.com/matthewliu10/birdman/internal/rng"
	"github.com/matthewliu10/birdman/internal/sim"
)

func main() {
	brainPath := flag.String("brain", "", "path to a brain.gob saved by cmd/train (optional)")
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	seed := flag.Int64("seed", 1, "RNG seed for the inspected world")
	ticks := flag.Int("ticks", 0, "number of ticks to advance before printing")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	operators := config.SimOperators{
		Selection: (&config.SelectionFlag{}).Get(),
		Crossover: (&config.CrossoverFlag{}).Get(),
		Mutation:  (&config.MutationFlag{}).Get(cfg.Mutation.Chance, cfg.Mutation.Coeff),
	}
	simCfg := cfg.SimConfig(operators)

	r := rng.New(*seed)
	s := sim.NewSimulationWithConfig(r, simCfg)

	if *brainPath != "" {
		weights, err := loadBrainWeights(*brainPath)
		if err != nil {
			log.Fatalf("load brain: %v", err)
		}
		seedBrain(s, weights)
	}

	for i := 0; i < *ticks; i++ {
		s.Step(r)
	}

	printWorld(s.World())
}

func loadBrainWeights(path string) (sim.BrainWeights, error) {
	f, err := os.Open(path)
	if err != nil {
		return sim.BrainWeights{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var weights sim.BrainWeights
	if err := gob.NewDecoder(f).Decode(&weights); err != nil {
		return sim.BrainWeights{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return weights, nil
}

// seedBrain overwrites every animal's brain with the loaded weights, for
// inspecting how a trained brain behaves against a fresh world.
func seedBrain(s *sim.Simulation, weights sim.BrainWeights) {
	brain := sim.BrainFromWeights(weights)
	world := s.World()
	for i := range world.Animals {
		world.Animals[i].Brain = brain
	}
}

func printWorld(w *sim.World) {
	fmt.Printf("animals: %d, foods: %d\n", len(w.Animals), len(w.Foods))
	for i, a := range w.Animals {
		fmt.Printf("animal %3d: pos=(%.3f, %.3f) rot=%.3f speed=%.5f eaten=%d\n",
			i, a.Position.X, a.Position.Y, a.Rotation, a.Speed, a.FoodEaten)
	}
	for i, f := range w.Foods {
		fmt.Printf("food %3d: pos=(%.3f, %.3f)\n", i, f.Position.X, f.Position.Y)
	}
}
