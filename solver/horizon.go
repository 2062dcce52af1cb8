// solver/horizon.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package solver

import (
	"fmt"
	"log/slog"

	av "github.com/rwyseq/rwyseq/aviation"
	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/sched"
	"github.com/rwyseq/rwyseq/util"
)

type HorizonConfig struct {
	// TimeWindow is the width in seconds of the slice of each window
	// whose landings are committed.
	TimeWindow int `yaml:"time_window"`
	// NumWindows is how many time windows ahead each sub-problem sees.
	NumWindows int `yaml:"num_windows"`
}

func DefaultHorizonConfig() HorizonConfig {
	return HorizonConfig{TimeWindow: 600, NumWindows: 3}
}

func (c HorizonConfig) Validate() error {
	var e util.ErrorLogger
	if c.TimeWindow < 1 {
		e.ErrorString("time window %d must be positive", c.TimeWindow)
	}
	if c.NumWindows < 1 {
		e.ErrorString("window count %d must be positive", c.NumWindows)
	}
	return e.Err(ErrInvalidParameters)
}

// HorizonResult holds the outcome of a receding horizon run. Committed
// and CommitWindow are indexed like the caller's problem's Aircraft.
//
// Committed holds the landing each window planned when it committed the
// aircraft. Solution.Fitness instead comes from replaying the whole
// assignment through the caller's problem, whose landing times are
// given by its LandingTimes method; the two differ when a deferred
// aircraft precedes, in sequence order, one already committed to the
// same runway.
type HorizonResult struct {
	Solution     sched.Solution
	Committed    []sched.Landing
	CommitWindow []int
	Windows      int // number of sub-problems solved
}

// RecedingHorizon schedules a long sequence of aircraft by repeatedly
// solving the aircraft visible in a bounded lookahead, committing those
// that land in the first time window, and moving the window forward.
//
// The caller's problem is never modified: each run works on a private
// copy of the airplanes whose earliest times are raised as traffic is
// committed ahead of them.
type RecedingHorizon struct {
	problem *sched.ASP
	cfg     HorizonConfig
	factory Factory
	lg      *log.Logger
}

var _ Optimiser = (*RecedingHorizon)(nil)

func NewRecedingHorizon(p *sched.ASP, cfg HorizonConfig, factory Factory, lg *log.Logger) (*RecedingHorizon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: no solver factory", ErrInvalidParameters)
	}
	if len(p.Aircraft) == 0 {
		return nil, ErrNoAircraft
	}

	lg.Info("receding horizon", slog.Int("time_window", cfg.TimeWindow), slog.Int("num_windows", cfg.NumWindows),
		slog.Int("aircraft", len(p.Aircraft)))
	return &RecedingHorizon{problem: p, cfg: cfg, factory: factory, lg: lg}, nil
}

func (h *RecedingHorizon) Optimise() (sched.Solution, error) {
	res, err := h.Run()
	return res.Solution, err
}

// runwayState tracks the last committed operation on each runway.
type runwayState struct {
	sep      av.SeparationTable
	time     []int
	category []int // 0 if nothing has been committed
}

// tighten raises the airplane's earliest times so that it cannot be
// scheduled too close behind anything already committed.
func (rs *runwayState) tighten(ac *av.Airplane) {
	for r, cat := range rs.category {
		if cat != 0 {
			ac.RaiseEarliest(r, rs.time[r]+rs.sep.Between(cat, ac.Category)+1)
		}
	}
}

func (rs *runwayState) commit(ac *av.Airplane, l sched.Landing) {
	rs.time[l.Runway-1] = l.Time
	rs.category[l.Runway-1] = ac.Category
}

// Run performs the receding horizon decomposition and returns the
// stitched-together schedule.
func (h *RecedingHorizon) Run() (HorizonResult, error) {
	work := h.problem.WorkingCopy()
	n := len(work.Aircraft)

	index := make(map[*av.Airplane]int, n)
	for i, ac := range work.Aircraft {
		index[ac] = i
	}

	res := HorizonResult{
		Committed:    make([]sched.Landing, n),
		CommitWindow: make([]int, n),
	}
	assignment := make([]int, n)
	committed := make([]bool, n)
	remaining := n

	rs := runwayState{
		sep:      work.Separation,
		time:     make([]int, work.Runways),
		category: make([]int, work.Runways),
	}

	lookahead := h.cfg.NumWindows * h.cfg.TimeWindow
	for start := work.Aircraft[0].ScheduledTime(); remaining > 0; start += h.cfg.TimeWindow {
		sub := work.Trim(func(ac *av.Airplane) bool {
			return !committed[index[ac]] && ac.ScheduledTime() < start+lookahead
		})
		if len(sub.Aircraft) == 0 {
			continue
		}

		for _, ac := range sub.Aircraft {
			rs.tighten(ac)
		}

		opt, err := h.factory(sub)
		if err != nil {
			return HorizonResult{}, err
		}
		s, err := opt.Optimise()
		if err != nil {
			return HorizonResult{}, err
		}
		if err := checkSolution(sub, s); err != nil {
			return HorizonResult{}, err
		}

		// Landings on each runway are increasing in sequence order, so the
		// committed aircraft form a prefix of each runway's traffic. Once
		// start has passed every earliest time in the window, the first
		// aircraft on each used runway lands no later than start, so
		// every window eventually commits something.
		end := start + h.cfg.TimeWindow
		ncommit := 0
		for i, l := range sub.LandingTimes(s.Assignment) {
			ac := sub.Aircraft[i]
			if l.Time > end {
				continue
			}

			idx := index[ac]
			if committed[idx] {
				panic(fmt.Sprintf("%s committed twice", ac.Callsign))
			}
			committed[idx] = true
			assignment[idx] = l.Runway
			res.Committed[idx] = l
			res.CommitWindow[idx] = res.Windows
			rs.commit(ac, l)
			ncommit++
		}
		remaining -= ncommit

		h.lg.Debug("window", slog.Int("start", start), slog.Int("aircraft", len(sub.Aircraft)),
			slog.Int("committed", ncommit), slog.Int("deferred", len(sub.Aircraft)-ncommit))

		res.Windows++
	}

	res.Solution = sched.Solution{
		Assignment: assignment,
		Fitness:    h.problem.Evaluate(assignment),
		Sequence:   h.problem.Aircraft,
	}
	return res, nil
}
