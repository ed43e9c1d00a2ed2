// Package config loads the tunable parameters of a Simulation and the
// training CLI from an optional YAML file, layered under the reference
// defaults from spec.md.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matthewliu10/birdman/internal/sim"
)

// World carries population-size parameters.
type World struct {
	NumAnimals int `yaml:"num_animals"`
	NumFoods   int `yaml:"num_foods"`
}

// Eye carries an Animal's field-of-view parameters.
type Eye struct {
	FOVRange float32 `yaml:"fov_range"`
	FOVAngle float32 `yaml:"fov_angle"`
	Cells    int     `yaml:"cells"`
}

// Mutation carries the default mutation operator's hyperparameters.
type Mutation struct {
	Chance float32 `yaml:"chance"`
	Coeff  float32 `yaml:"coeff"`
}

// Config is the full set of knobs a training run or simulation needs.
type Config struct {
	World       World    `yaml:"world"`
	Eye         Eye      `yaml:"eye"`
	Mutation    Mutation `yaml:"mutation"`
	Generations int      `yaml:"generations"`
	Replicas    int      `yaml:"replicas"`
	Workers     int      `yaml:"workers"`
	Output      string   `yaml:"output"`
}

// Default returns the reference configuration: population sizes and eye
// parameters matching spec.md's reference values, a 1%-chance/0.3-coefficient
// mutation, a single training replica, and one worker.
func Default() Config {
	return Config{
		World: World{
			NumAnimals: sim.DefaultNumAnimals,
			NumFoods:   sim.DefaultNumFoods,
		},
		Eye: Eye{
			FOVRange: sim.DefaultFOVRange,
			FOVAngle: sim.DefaultFOVAngle,
			Cells:    sim.DefaultCells,
		},
		Mutation: Mutation{
			Chance: 0.01,
			Coeff:  0.3,
		},
		Generations: 200,
		Replicas:    1,
		Workers:     1,
		Output:      "brain.gob",
	}
}

// Load reads a YAML config file on top of Default. A missing path or a
// missing file is not an error — it simply means "use the defaults"; a
// present-but-malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// SimConfig converts Config into the sim.Config a Simulation is built from.
func (c Config) SimConfig(operators SimOperators) sim.Config {
	return sim.Config{
		NumAnimals: c.World.NumAnimals,
		NumFoods:   c.World.NumFoods,
		Eye:        sim.NewEye(c.Eye.FOVRange, c.Eye.FOVAngle, c.Eye.Cells),
		Selection:  operators.Selection,
		Crossover:  operators.Crossover,
		Mutation:   operators.Mutation,
	}
}
