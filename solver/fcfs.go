// solver/fcfs.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package solver

import (
	"log/slog"

	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/sched"
)

// FCFS is the first-come-first-served baseline: aircraft are taken in
// order and each is given the runway where it can land soonest.
type FCFS struct {
	problem *sched.ASP
	lg      *log.Logger
}

var _ Optimiser = (*FCFS)(nil)

func NewFCFS(p *sched.ASP, lg *log.Logger) (*FCFS, error) {
	if len(p.Aircraft) == 0 {
		return nil, ErrNoAircraft
	}
	return &FCFS{problem: p, lg: lg}, nil
}

func (f *FCFS) Optimise() (sched.Solution, error) {
	p := f.problem

	lastTime := make([]int, p.Runways)
	lastCategory := make([]int, p.Runways)
	assignment := make([]int, len(p.Aircraft))

	for i, ac := range p.Aircraft {
		best, bestTime := -1, 0
		for r := range p.Runways {
			t := ac.Earliest[r]
			if lastCategory[r] != 0 {
				t = max(t, lastTime[r]+p.Separation.Between(lastCategory[r], ac.Category)+1)
			}
			if best == -1 || t < bestTime {
				best, bestTime = r, t
			}
		}

		lastTime[best], lastCategory[best] = bestTime, ac.Category
		assignment[i] = best + 1
	}

	s := sched.Solution{
		Assignment: assignment,
		Fitness:    p.Evaluate(assignment),
		Sequence:   p.Aircraft,
	}
	f.lg.Debug("fcfs", slog.Int("aircraft", len(assignment)), slog.Float64("cost", s.Fitness))
	return s, nil
}
