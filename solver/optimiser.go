// solver/optimiser.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package solver provides the search algorithms that assign runways to
// the aircraft of a sched.ASP: a bee colony optimiser, a genetic
// algorithm, a first-come-first-served baseline, and a receding horizon
// driver that decomposes long schedules into windows solved by any of
// the others.
package solver

import (
	"fmt"
	"slices"

	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/sched"
)

// Optimiser is implemented by all of the solvers.
type Optimiser interface {
	Optimise() (sched.Solution, error)
}

// Factory constructs an optimiser for the given problem. The receding
// horizon solver calls it once for each window.
type Factory func(p *sched.ASP) (Optimiser, error)

// BeeColonyFactory returns a Factory for bee colony optimisers with the
// given configuration. Each optimiser draws from its problem's random
// source.
func BeeColonyFactory(cfg BeeColonyConfig, lg *log.Logger) Factory {
	return func(p *sched.ASP) (Optimiser, error) {
		return NewBeeColony(p, cfg, p.Rand(), lg)
	}
}

func GeneticFactory(cfg GeneticConfig, lg *log.Logger) Factory {
	return func(p *sched.ASP) (Optimiser, error) {
		return NewGenetic(p, cfg, p.Rand(), lg)
	}
}

func FCFSFactory(lg *log.Logger) Factory {
	return func(p *sched.ASP) (Optimiser, error) {
		return NewFCFS(p, lg)
	}
}

// checkSolution verifies that s is a complete assignment for p.
func checkSolution(p *sched.ASP, s sched.Solution) error {
	if len(s.Assignment) != len(p.Aircraft) {
		return fmt.Errorf("%w: %d runways assigned for %d aircraft", ErrInvalidSolution,
			len(s.Assignment), len(p.Aircraft))
	}
	if i := slices.IndexFunc(s.Assignment, func(r int) bool { return r < 1 || r > p.Runways }); i != -1 {
		return fmt.Errorf("%w: %s assigned runway %d", ErrInvalidSolution, p.Aircraft[i].Callsign,
			s.Assignment[i])
	}
	return nil
}
