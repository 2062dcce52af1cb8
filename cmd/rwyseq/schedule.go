// cmd/rwyseq/schedule.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rwyseq/rwyseq/instance"
	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/rand"
	"github.com/rwyseq/rwyseq/solver"
	"github.com/rwyseq/rwyseq/util"

	"github.com/goforj/godump"
)

func solve(inst *instance.Instance, hash string, cfg solver.Config, lg *log.Logger) (*instance.Schedule, error) {
	p, err := inst.Build(rand.New(*seed))
	if err != nil {
		return nil, err
	}
	lg.Infof("solving %s with %s, seed %d", p, cfg, *seed)

	start := time.Now()
	s, landings, err := solver.Solve(p, cfg, lg)
	if err != nil {
		return nil, err
	}

	return &instance.Schedule{
		Instance:     inst.Name,
		InstanceHash: hash,
		Solver:       cfg.String(),
		Seed:         *seed,
		Solution:     s,
		Landings:     landings,
		Elapsed:      time.Since(start),
	}, nil
}

func writeInstance(path string, inst *instance.Instance) error {
	w, err := util.CreateFile(path)
	if err != nil {
		return err
	}

	if util.BaseExt(path) == ".json" {
		err = instance.WriteJSON(w, inst)
	} else {
		err = instance.WriteText(w, inst)
	}
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func dumpSchedule(inst *instance.Instance, s *instance.Schedule) {
	godump.Dump(inst)
	godump.Dump(s)
}

// printSchedule writes a table with the runway and landing time of each
// aircraft, in landing order of the problem's sequence.
func printSchedule(w io.Writer, s *instance.Schedule) {
	tw := tabwriter.NewWriter(w, 0 /* min width */, 1 /* tab width */, 2 /* padding */, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CALLSIGN\tKIND\tCAT\tRWY\tEARLIEST\tTIME\tDELAY\tCOST\t")

	for i, ac := range s.Solution.Sequence {
		l := s.Landings[i]
		earliest := ac.Earliest[l.Runway-1]
		delay := max(0, l.Time-earliest)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.1f\t\n", ac.Callsign, ac.Kind, ac.Category, l.Runway,
			earliest, l.Time, delay, float64(delay)*ac.DelayCost)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s: %s, seed %d\n", s.Instance, s.Solver, s.Seed)
	fmt.Fprintf(w, "cost %.1f, %d aircraft, %s\n", s.Solution.Fitness, len(s.Solution.Sequence),
		s.Elapsed.Round(time.Millisecond))
}
