// Command train runs the foraging simulation headlessly for a number of
// generations, optionally training several independent replicas
// concurrently and keeping the best-performing one, then saves its best
// brain's weights to disk.
package main

import (
	"context"
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	progressbar "github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/matthewliu10/birdman/internal/config"
	"github.com/matthewliu10/birdman/internal/rng"
	"github.com/matthewliu10/birdman/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	generations := flag.Int("generations", 0, "number of generations to train (0 = use config)")
	population := flag.Int("population", 0, "animal population size (0 = use config)")
	workers := flag.Int("workers", 0, "max concurrent replicas (0 = use config)")
	replicas := flag.Int("replicas", 0, "independent replicas to train, keeping the best (0 = use config)")
	output := flag.String("output", "", "output file for the best brain's weights (\"\" = use config)")
	seed := flag.Int64("seed", 1, "base RNG seed; replica i is seeded with seed+i")

	var selectionFlag config.SelectionFlag
	var crossoverFlag config.CrossoverFlag
	var mutationFlag config.MutationFlag
	flag.Var(&selectionFlag, "selection", "selection strategy: Roulette, Rank, Tournament(k)")
	flag.Var(&crossoverFlag, "crossover", "crossover strategy: Uniform, Blend")
	flag.Var(&mutationFlag, "mutation", "mutation strategy: Gaussian(chance,coeff), UniformNoise(chance,coeff)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *generations > 0 {
		cfg.Generations = *generations
	}
	if *population > 0 {
		cfg.World.NumAnimals = *population
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *replicas > 0 {
		cfg.Replicas = *replicas
	}
	if *output != "" {
		cfg.Output = *output
	}

	operators := config.SimOperators{
		Selection: selectionFlag.Get(),
		Crossover: crossoverFlag.Get(),
		Mutation:  mutationFlag.Get(cfg.Mutation.Chance, cfg.Mutation.Coeff),
	}
	simCfg := cfg.SimConfig(operators)

	fmt.Printf("Animals: %d, Foods: %d, Generations: %d, Replicas: %d, Workers: %d\n",
		cfg.World.NumAnimals, cfg.World.NumFoods, cfg.Generations, cfg.Replicas, cfg.Workers)

	results := make([]replicaResult, cfg.Replicas)
	bar := progressbar.Default(int64(cfg.Replicas), "training replicas")

	g, ctx := errgroup.WithContext(context.Background())
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for i := 0; i < cfg.Replicas; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = trainReplica(simCfg, cfg.Generations, *seed+int64(i))
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("training: %v", err)
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.bestFitness > best.bestFitness {
			best = r
		}
	}
	fmt.Printf("\nBest replica fitness: %.1f\n", best.bestFitness)

	f, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatalf("create output file: %v", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(best.bestBrain); err != nil {
		log.Fatalf("save brain weights: %v", err)
	}
	fmt.Printf("Weights saved to %s\n", cfg.Output)
}

type replicaResult struct {
	bestFitness float32
	bestBrain   sim.BrainWeights
}

func trainReplica(cfg sim.Config, generations int, seed int64) replicaResult {
	r := rng.New(seed)
	s := sim.NewSimulationWithConfig(r, cfg)

	var best replicaResult
	for gen := 0; gen < generations; gen++ {
		start := time.Now()
		stats := s.Train(r)
		fmt.Printf("seed %d | gen %3d | max %6.1f | avg %6.1f | %.1fs\n",
			seed, gen+1, stats.Max, stats.Avg, time.Since(start).Seconds())

		if gen == 0 || stats.Max > best.bestFitness {
			best.bestFitness = stats.Max
			best.bestBrain = bestBrainOf(s)
		}
	}
	return best
}

func bestBrainOf(s *sim.Simulation) sim.BrainWeights {
	evaluated := s.LastEvaluated()
	bestIdx := 0
	for i, a := range evaluated {
		if a.FoodEaten > evaluated[bestIdx].FoodEaten {
			bestIdx = i
		}
	}
	return sim.ExportBrain(evaluated[bestIdx].Brain)
}
