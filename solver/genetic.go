// solver/genetic.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package solver

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/rand"
	"github.com/rwyseq/rwyseq/sched"
	"github.com/rwyseq/rwyseq/util"
)

type GeneticConfig struct {
	PopulationSize int `yaml:"population"`
	Generations    int `yaml:"generations"`
}

func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{PopulationSize: 50, Generations: 100}
}

func (c GeneticConfig) Validate() error {
	var e util.ErrorLogger
	if c.PopulationSize < 2 {
		e.ErrorString("population of %d; at least 2 are required", c.PopulationSize)
	}
	if c.Generations < 0 {
		e.ErrorString("negative generation count %d", c.Generations)
	}
	return e.Err(ErrInvalidParameters)
}

// Genetic is a generational genetic algorithm: each generation is bred
// from the previous one by roulette-wheel selection, one-point crossover
// and swap mutation.
type Genetic struct {
	problem sched.Problem
	cfg     GeneticConfig
	rand    *rand.Rand
	lg      *log.Logger
}

var _ Optimiser = (*Genetic)(nil)

func NewGenetic(p sched.Problem, cfg GeneticConfig, r *rand.Rand, lg *log.Logger) (*Genetic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidParameters)
	}

	lg.Info("genetic", slog.Int("population", cfg.PopulationSize), slog.Int("generations", cfg.Generations))
	return &Genetic{problem: p, cfg: cfg, rand: r, lg: lg}, nil
}

func (g *Genetic) Optimise() (sched.Solution, error) {
	population := make([]sched.Solution, g.cfg.PopulationSize)
	for i := range population {
		population[i] = g.problem.GenerateSolution()
		if len(population[i].Assignment) == 0 {
			return sched.Solution{}, ErrNoAircraft
		}
	}

	best := g.problem.GenerateEmptySolution()
	observe := func(pop []sched.Solution) {
		if i := util.ArgMin(pop, func(s sched.Solution) float64 { return s.Fitness }); i != -1 && pop[i].Better(best) {
			best = pop[i].Clone()
		}
	}
	observe(population)

	for gen := range g.cfg.Generations {
		population = g.breed(population)
		observe(population)
		g.lg.Debugf("generation %d: best %.1f", gen, best.Fitness)
	}

	return best, nil
}

func (g *Genetic) breed(population []sched.Solution) []sched.Solution {
	next := make([]sched.Solution, 0, len(population))
	for len(next) < len(population) {
		a, b := g.crossover(g.selectParent(population), g.selectParent(population))
		next = append(next, g.mutate(a))
		if len(next) < len(population) {
			next = append(next, g.mutate(b))
		}
	}
	return next
}

func (g *Genetic) selectParent(population []sched.Solution) sched.Solution {
	s, ok := rand.SampleWeighted(g.rand, population, func(s sched.Solution) float64 {
		if math.IsInf(s.Fitness, 1) {
			return 0
		}
		return 1 / (1 + s.Fitness)
	})
	if !ok {
		s = rand.SampleSlice(g.rand, population)
	}
	return s
}

// crossover returns the two children formed by exchanging the parents'
// assignments after a random cut point.
func (g *Genetic) crossover(a, b sched.Solution) (sched.Solution, sched.Solution) {
	c0, c1 := a.Clone(), b.Clone()
	cut := g.rand.IntRange(0, len(a.Assignment))
	copy(c0.Assignment[cut:], b.Assignment[cut:])
	copy(c1.Assignment[cut:], a.Assignment[cut:])
	c0.Fitness = g.problem.EvaluateSolution(c0)
	c1.Fitness = g.problem.EvaluateSolution(c1)
	return c0, c1
}

// mutate swaps the runways of two distinct aircraft in place.
func (g *Genetic) mutate(s sched.Solution) sched.Solution {
	n := len(s.Assignment)
	if n < 2 {
		return s
	}
	i := g.rand.Intn(n)
	j := g.rand.Intn(n - 1)
	if j >= i {
		j++
	}
	s.Assignment[i], s.Assignment[j] = s.Assignment[j], s.Assignment[i]
	s.Fitness = g.problem.EvaluateSolution(s)
	return s
}
