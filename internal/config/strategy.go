package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/matthewliu10/birdman/internal/genetic"
)

// SimOperators bundles the three pluggable genetic operators a Simulation
// needs, resolved from CLI flags. When a flag wasn't passed, selection falls
// back to roulette and crossover to uniform; mutation falls back to the
// Config's chance/coeff (see MutationFlag.Get).
type SimOperators struct {
	Selection genetic.SelectionMethod
	Crossover genetic.CrossoverMethod
	Mutation  genetic.MutationMethod
}

var strategyFmt = regexp.MustCompile(`^(\w+)(\(([^)]*)\))?$`)

const (
	errAlreadySet   = "%sFlag.Set(%s): already set to %s"
	errUnknownFn    = "%sFlag.Set(%s): unknown strategy %s"
	errInvalidParam = "%sFlag.Set(%s): parameter %s should %s"
)

// SelectionFlag implements flag.Value, accepting:
//
//	--selection=Roulette
//	--selection=Rank
//	--selection=Tournament(3)
type SelectionFlag struct {
	method genetic.SelectionMethod
}

func (f SelectionFlag) String() string {
	if f.method == nil {
		return "Roulette"
	}
	return fmt.Sprintf("%T", f.method)
}

// Set implements flag.Value.
func (f *SelectionFlag) Set(s string) error {
	if f.method != nil {
		return fmt.Errorf(errAlreadySet, "Selection", s, f)
	}

	match := strategyFmt.FindStringSubmatch(s)
	if match == nil {
		return fmt.Errorf(errUnknownFn, "Selection", s, s)
	}
	fn, arg := match[1], match[3]

	switch fn {
	case "Roulette":
		f.method = genetic.RouletteWheelSelection{}
	case "Rank":
		f.method = genetic.RankSelection{}
	case "Tournament":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf(errInvalidParam, "Selection", s, arg, "a whole number >= 1")
		}
		f.method = genetic.TournamentSelection{Size: n}
	default:
		return fmt.Errorf(errUnknownFn, "Selection", s, fn)
	}
	return nil
}

// Get returns the resolved SelectionMethod, defaulting to
// genetic.RouletteWheelSelection when Set was never called.
func (f *SelectionFlag) Get() genetic.SelectionMethod {
	if f.method == nil {
		return genetic.RouletteWheelSelection{}
	}
	return f.method
}

// CrossoverFlag implements flag.Value, accepting:
//
//	--crossover=Uniform
//	--crossover=Blend
type CrossoverFlag struct {
	method genetic.CrossoverMethod
}

func (f CrossoverFlag) String() string {
	if f.method == nil {
		return "Uniform"
	}
	return fmt.Sprintf("%T", f.method)
}

// Set implements flag.Value.
func (f *CrossoverFlag) Set(s string) error {
	if f.method != nil {
		return fmt.Errorf(errAlreadySet, "Crossover", s, f)
	}

	switch s {
	case "Uniform":
		f.method = genetic.UniformCrossover{}
	case "Blend":
		f.method = genetic.BlendCrossover{}
	default:
		return fmt.Errorf(errUnknownFn, "Crossover", s, s)
	}
	return nil
}

// Get returns the resolved CrossoverMethod, defaulting to
// genetic.UniformCrossover when Set was never called.
func (f *CrossoverFlag) Get() genetic.CrossoverMethod {
	if f.method == nil {
		return genetic.UniformCrossover{}
	}
	return f.method
}

// MutationFlag implements flag.Value, accepting:
//
//	--mutation=Gaussian(0.01,0.3)
//	--mutation=UniformNoise(0.01,0.3)
type MutationFlag struct {
	method genetic.MutationMethod
}

func (f MutationFlag) String() string {
	if f.method == nil {
		return "Gaussian(0.01,0.3)"
	}
	return fmt.Sprintf("%T", f.method)
}

var mutationArgFmt = regexp.MustCompile(`^([\d.eE+-]+),([\d.eE+-]+)$`)

// Set implements flag.Value.
func (f *MutationFlag) Set(s string) error {
	if f.method != nil {
		return fmt.Errorf(errAlreadySet, "Mutation", s, f)
	}

	match := strategyFmt.FindStringSubmatch(s)
	if match == nil {
		return fmt.Errorf(errUnknownFn, "Mutation", s, s)
	}
	fn, arg := match[1], match[3]

	args := mutationArgFmt.FindStringSubmatch(arg)
	if args == nil {
		return fmt.Errorf(errInvalidParam, "Mutation", s, arg, "be \"chance,coeff\"")
	}
	chance, err1 := strconv.ParseFloat(args[1], 32)
	coeff, err2 := strconv.ParseFloat(args[2], 32)
	if err1 != nil || err2 != nil {
		return fmt.Errorf(errInvalidParam, "Mutation", s, arg, "be two decimal numbers")
	}

	switch fn {
	case "Gaussian":
		f.method = genetic.NewGaussianMutation(float32(chance), float32(coeff))
	case "UniformNoise":
		f.method = genetic.NewUniformNoiseMutation(float32(chance), float32(coeff))
	default:
		return fmt.Errorf(errUnknownFn, "Mutation", s, fn)
	}
	return nil
}

// Get returns the resolved MutationMethod, falling back to a
// GaussianMutation built from defaultChance/defaultCoeff when Set was never
// called — letting a config file's mutation.chance/mutation.coeff take
// effect whenever the CLI flag itself wasn't passed.
func (f *MutationFlag) Get(defaultChance, defaultCoeff float32) genetic.MutationMethod {
	if f.method == nil {
		return genetic.NewGaussianMutation(defaultChance, defaultCoeff)
	}
	return f.method
}
