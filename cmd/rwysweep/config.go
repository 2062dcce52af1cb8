// cmd/rwysweep/config.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/rwyseq/rwyseq/instance"
	"github.com/rwyseq/rwyseq/solver"
	"github.com/rwyseq/rwyseq/util"

	"gopkg.in/yaml.v2"
)

var ErrInvalidSweep = errors.New("Invalid sweep configuration")

// Sweep describes one experiment: a solver parameter is varied over a
// range, and for each value the solver is run repeatedly on the same
// instance.
type Sweep struct {
	Name     string `yaml:"name"`
	Instance string `yaml:"instance"`
	Format   string `yaml:"format"`
	Runways  int    `yaml:"runways"`

	Solver solver.Config `yaml:",inline"`

	Parameter string `yaml:"parameter"`
	Lower     int    `yaml:"lower"`
	Upper     int    `yaml:"upper"` // exclusive
	Step      int    `yaml:"step"`

	Runs    int    `yaml:"runs"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`
	Output  string `yaml:"output"`
}

// Parameters are the names of the solver parameters that can be swept.
var Parameters = []string{"bees", "iterations", "trial_limit", "max_scouts", "population", "generations",
	"time_window", "num_windows"}

func LoadSweep(path string) (*Sweep, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := &Sweep{Solver: solver.DefaultConfig()}
	if err := yaml.UnmarshalStrict(buf, s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Set default config values
	if s.Runways == 0 {
		s.Runways = 3
	}
	if s.Step == 0 {
		s.Step = 1
	}
	if s.Runs == 0 {
		s.Runs = 10
	}
	if s.Workers == 0 {
		s.Workers = runtime.NumCPU()
	}
	if s.Output == "" {
		s.Output = "."
	}
	if s.Name == "" {
		s.Name = s.Parameter
		if s.Solver.Horizon != nil {
			s.Name = "rhc_" + s.Name
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Sweep) Validate() error {
	var e util.ErrorLogger

	if s.Instance == "" {
		e.ErrorString("no instance given")
	}
	if _, err := instance.ParseFormat(s.Format); err != nil {
		e.Error(err)
	}
	if !slices.Contains(Parameters, s.Parameter) {
		e.ErrorString("unknown parameter %q", s.Parameter)
	}
	if s.Step < 1 {
		e.ErrorString("step %d must be positive", s.Step)
	}
	if s.Lower >= s.Upper {
		e.ErrorString("empty range [%d, %d)", s.Lower, s.Upper)
	}
	if s.Runs < 1 {
		e.ErrorString("%d runs", s.Runs)
	}
	if s.Workers < 1 {
		e.ErrorString("%d workers", s.Workers)
	}

	if !e.HaveErrors() {
		for _, v := range s.Values() {
			if c, err := s.SolverConfig(v); err != nil {
				e.Error(err)
				break
			} else if err := c.Validate(); err != nil {
				e.ErrorString("%s = %d: %v", s.Parameter, v, err)
			}
		}
	}

	return e.Err(ErrInvalidSweep)
}

// Values returns the swept parameter values.
func (s *Sweep) Values() []int {
	var v []int
	for x := s.Lower; x < s.Upper && s.Step > 0; x += s.Step {
		v = append(v, x)
	}
	return v
}

// SolverConfig returns the solver configuration with the swept
// parameter set to v.
func (s *Sweep) SolverConfig(v int) (solver.Config, error) {
	c := s.Solver
	if c.Horizon != nil {
		h := *c.Horizon
		c.Horizon = &h
	}

	switch s.Parameter {
	case "bees":
		c.BeeColony.NumBees = v
	case "iterations":
		c.BeeColony.MaxIter = v
	case "trial_limit":
		c.BeeColony.TrialLimit = v
	case "max_scouts":
		c.BeeColony.MaxScouts = v
	case "population":
		c.Genetic.PopulationSize = v
	case "generations":
		c.Genetic.Generations = v
	case "time_window":
		if c.Horizon == nil {
			return c, fmt.Errorf("%s requires rhc", s.Parameter)
		}
		c.Horizon.TimeWindow = v
	case "num_windows":
		if c.Horizon == nil {
			return c, fmt.Errorf("%s requires rhc", s.Parameter)
		}
		c.Horizon.NumWindows = v
	default:
		return c, fmt.Errorf("unknown parameter %q", s.Parameter)
	}
	return c, nil
}
