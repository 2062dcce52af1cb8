// solver/config.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package solver

import (
	"fmt"
	"strings"

	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/sched"
)

const (
	BeeColonyName = "bco"
	GeneticName   = "ga"
	FCFSName      = "fcfs"
)

var Names = []string{BeeColonyName, GeneticName, FCFSName}

// Config selects a solver and holds the parameters for each kind. If
// Horizon is non-nil, the solver is run under the receding horizon
// decomposition.
type Config struct {
	Solver    string          `yaml:"solver"`
	BeeColony BeeColonyConfig `yaml:"bco"`
	Genetic   GeneticConfig   `yaml:"ga"`
	Horizon   *HorizonConfig  `yaml:"rhc"`
}

func DefaultConfig() Config {
	return Config{
		Solver:    BeeColonyName,
		BeeColony: DefaultBeeColonyConfig(),
		Genetic:   DefaultGeneticConfig(),
	}
}

func (c Config) Validate() error {
	var err error
	switch c.Solver {
	case BeeColonyName:
		err = c.BeeColony.Validate()
	case GeneticName:
		err = c.Genetic.Validate()
	case FCFSName:
	default:
		return fmt.Errorf("%w: unknown solver %q; expected one of %s", ErrInvalidParameters, c.Solver,
			strings.Join(Names, ", "))
	}
	if err == nil && c.Horizon != nil {
		err = c.Horizon.Validate()
	}
	return err
}

// String returns a description of the solver and the parameters it
// uses; it identifies the configuration in result caches.
func (c Config) String() string {
	var s string
	switch c.Solver {
	case BeeColonyName:
		s = fmt.Sprintf("bco(bees=%d,iters=%d,trials=%d,scouts=%d)", c.BeeColony.NumBees, c.BeeColony.MaxIter,
			c.BeeColony.TrialLimit, c.BeeColony.MaxScouts)
	case GeneticName:
		s = fmt.Sprintf("ga(population=%d,generations=%d)", c.Genetic.PopulationSize, c.Genetic.Generations)
	default:
		s = c.Solver
	}
	if c.Horizon != nil {
		s = fmt.Sprintf("rhc(window=%d,windows=%d,%s)", c.Horizon.TimeWindow, c.Horizon.NumWindows, s)
	}
	return s
}

// Factory returns a Factory for the configured solver, ignoring Horizon.
func (c Config) Factory(lg *log.Logger) (Factory, error) {
	switch c.Solver {
	case BeeColonyName:
		return BeeColonyFactory(c.BeeColony, lg), nil
	case GeneticName:
		return GeneticFactory(c.Genetic, lg), nil
	case FCFSName:
		return FCFSFactory(lg), nil
	default:
		return nil, fmt.Errorf("%w: unknown solver %q", ErrInvalidParameters, c.Solver)
	}
}

// Solve runs the configured solver on p, returning the solution along
// with the landing time and runway of each aircraft.
func Solve(p *sched.ASP, c Config, lg *log.Logger) (sched.Solution, []sched.Landing, error) {
	if err := c.Validate(); err != nil {
		return sched.Solution{}, nil, err
	}
	factory, err := c.Factory(lg)
	if err != nil {
		return sched.Solution{}, nil, err
	}

	if c.Horizon != nil {
		h, err := NewRecedingHorizon(p, *c.Horizon, factory, lg)
		if err != nil {
			return sched.Solution{}, nil, err
		}
		res, err := h.Run()
		if err != nil {
			return sched.Solution{}, nil, err
		}
		return res.Solution, p.LandingTimes(res.Solution.Assignment), nil
	}

	opt, err := factory(p)
	if err != nil {
		return sched.Solution{}, nil, err
	}
	s, err := opt.Optimise()
	if err != nil {
		return sched.Solution{}, nil, err
	}
	if err := checkSolution(p, s); err != nil {
		return sched.Solution{}, nil, err
	}
	return s, p.LandingTimes(s.Assignment), nil
}
