// solver/beecolony.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package solver

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/rand"
	"github.com/rwyseq/rwyseq/sched"
	"github.com/rwyseq/rwyseq/util"
)

type BeeColonyConfig struct {
	NumBees    int `yaml:"bees"`
	MaxIter    int `yaml:"iterations"`
	TrialLimit int `yaml:"trial_limit"`
	MaxScouts  int `yaml:"max_scouts"`
}

func DefaultBeeColonyConfig() BeeColonyConfig {
	return BeeColonyConfig{
		NumBees:    20,
		MaxIter:    100,
		TrialLimit: 10,
		MaxScouts:  1,
	}
}

func (c BeeColonyConfig) Validate() error {
	if c.NumBees < 2 {
		return fmt.Errorf("%w: %d bees", ErrTooFewBees, c.NumBees)
	}

	var e util.ErrorLogger
	if c.MaxIter < 0 {
		e.ErrorString("negative iteration count %d", c.MaxIter)
	}
	if c.TrialLimit < 0 {
		e.ErrorString("negative trial limit %d", c.TrialLimit)
	}
	if c.MaxScouts < 0 {
		e.ErrorString("negative scout limit %d", c.MaxScouts)
	}
	return e.Err(ErrInvalidParameters)
}

// Bee is a single member of the colony. Its Solution is the food source
// it is currently working; Trials counts the consecutive attempts to
// improve on it that have failed.
type Bee struct {
	ID       int
	Solution sched.Solution
	Trials   int
}

func (b *Bee) String() string {
	return fmt.Sprintf("bee %d: %s, %d trials", b.ID, b.Solution, b.Trials)
}

// BeeColony is an artificial bee colony optimiser. The colony's bees are
// split between two pools: employed bees exploit their food sources,
// while unemployed bees watch the employed ones and take over the most
// promising sources at the end of each iteration, at which point the
// pools change roles.
type BeeColony struct {
	problem sched.Problem
	cfg     BeeColonyConfig
	rand    *rand.Rand
	lg      *log.Logger

	employed   []*Bee
	unemployed []*Bee
	best       sched.Solution

	iteration int
}

var _ Optimiser = (*BeeColony)(nil)

// NewBeeColony creates a colony of cfg.NumBees bees, each starting with a
// randomly generated solution to p. The first half (rounded up) start
// out employed.
func NewBeeColony(p sched.Problem, cfg BeeColonyConfig, r *rand.Rand, lg *log.Logger) (*BeeColony, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidParameters)
	}

	bc := &BeeColony{
		problem: p,
		cfg:     cfg,
		rand:    r,
		lg:      lg,
		best:    p.GenerateEmptySolution(),
	}

	nEmployed := (cfg.NumBees + 1) / 2
	for i := range cfg.NumBees {
		s := p.GenerateSolution()
		if len(s.Assignment) == 0 {
			return nil, ErrNoAircraft
		}

		b := &Bee{ID: i, Solution: s}
		if i < nEmployed {
			bc.employed = append(bc.employed, b)
		} else {
			bc.unemployed = append(bc.unemployed, b)
		}
		bc.observe(s)
	}

	lg.Info("bee colony", slog.Int("bees", cfg.NumBees), slog.Int("max_iter", cfg.MaxIter),
		slog.Int("trial_limit", cfg.TrialLimit), slog.Int("max_scouts", cfg.MaxScouts),
		slog.Int("aircraft", len(bc.employed[0].Solution.Assignment)))

	return bc, nil
}

// Optimise runs the configured number of iterations and returns the best
// solution seen.
func (bc *BeeColony) Optimise() (sched.Solution, error) {
	for range bc.cfg.MaxIter {
		bc.Step()
		bc.lg.Debugf("iteration %d: best %.1f", bc.iteration, bc.best.Fitness)
	}
	return bc.best, nil
}

// Best returns the lowest-cost solution seen so far.
func (bc *BeeColony) Best() sched.Solution {
	return bc.best
}

// Step performs a single iteration of the search.
func (bc *BeeColony) Step() {
	bc.employedExploit()
	bc.onlookerExploit()
	bc.scout()
	bc.iteration++
}

// observe updates the best solution; ties keep the earlier one.
func (bc *BeeColony) observe(s sched.Solution) {
	if s.Better(bc.best) {
		bc.best = s.Clone()
	}
}

// companion returns a random employed bee other than employed[i], or
// employed[i] itself if it is the only one.
func (bc *BeeColony) companion(i int) *Bee {
	if len(bc.employed) == 1 {
		return bc.employed[i]
	}
	j := bc.rand.Intn(len(bc.employed) - 1)
	if j >= i {
		j++
	}
	return bc.employed[j]
}

func (bc *BeeColony) employedExploit() {
	for i, b := range bc.employed {
		n := bc.problem.Next(b.Solution, bc.companion(i).Solution)
		if n.Better(b.Solution) {
			b.Solution = n
			b.Trials = 0
			bc.observe(n)
		} else {
			b.Trials++
		}
	}
}

// weight gives cheaper food sources a higher chance of being chosen by
// onlookers.
func weight(b *Bee) float64 {
	if math.IsInf(b.Solution.Fitness, 1) {
		return 0
	}
	return 1 / (1 + b.Solution.Fitness)
}

// onlookerExploit has every unemployed bee take over the food source of
// an employed bee chosen with probability proportional to its weight;
// the onlookers then become the employed pool and the previously
// employed bees become onlookers.
func (bc *BeeColony) onlookerExploit() {
	for _, b := range bc.unemployed {
		src, ok := rand.SampleWeighted(bc.rand, bc.employed, weight)
		if !ok {
			// Nothing has finite cost yet.
			src = rand.SampleSlice(bc.rand, bc.employed)
		}
		b.Solution = src.Solution.Clone()
		b.Trials = src.Trials
	}

	bc.employed, bc.unemployed = bc.unemployed, bc.employed
}

// scout abandons the food sources of up to MaxScouts employed bees that
// have exceeded the trial limit, most-tried first, replacing them with a
// step away from another employed bee's source.
func (bc *BeeColony) scout() {
	idx := make([]int, len(bc.employed))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return bc.employed[b].Trials - bc.employed[a].Trials
	})

	scouts := 0
	for _, i := range idx {
		if scouts >= bc.cfg.MaxScouts {
			break
		}
		b := bc.employed[i]
		if b.Trials <= bc.cfg.TrialLimit {
			// Sorted, so nobody else qualifies either.
			break
		}

		b.Solution = bc.problem.Next(b.Solution, bc.companion(i).Solution)
		b.Trials = 0
		bc.observe(b.Solution)
		scouts++
	}
}
