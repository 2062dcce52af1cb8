// cmd/rwysweep/main.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// rwysweep measures how solution cost and solve time vary with one of a
// solver's parameters. The experiment is described by a YAML file:
//
//	name: trial_limit
//	instance: dataset/alp_7_50.csv
//	runways: 3
//	solver: bco
//	bco: {bees: 500, iterations: 100, trial_limit: 10, max_scouts: 1}
//	rhc: {time_window: 1800, num_windows: 2}
//	parameter: trial_limit
//	lower: 1
//	upper: 26
//	runs: 10
//	seed: 1
//	output: images
//
// and the results are written to <output>/<name>.csv along with plots of
// the mean cost and time.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rwyseq/rwyseq/instance"
	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/rand"
)

var (
	configFile = flag.String("config", "sweep.yaml", "YAML file describing the sweep")
	workers    = flag.Int("workers", 0, "number of concurrent runs; overrides the config file if non-zero")
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	if err := run(lg); err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(lg *log.Logger) error {
	s, err := LoadSweep(*configFile)
	if err != nil {
		return err
	}
	if *workers > 0 {
		s.Workers = *workers
	}

	f, err := instance.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	inst, err := instance.Load(s.Instance, f, s.Runways)
	if err != nil {
		return err
	}
	// Report problems with the instance once rather than from every run.
	if _, err := inst.Build(rand.New(s.Seed)); err != nil {
		return err
	}

	fmt.Printf("%s: sweeping %s over %v with %s, %d runs each\n", inst, s.Parameter, s.Values(), s.Solver, s.Runs)

	points, err := RunSweep(context.Background(), s, inst, lg)
	if err != nil {
		return err
	}
	for _, p := range points {
		fmt.Printf("%s %d: cost %.1f (sd %.1f, %.1f-%.1f), time %.3fs\n", s.Parameter, p.Value, p.MeanCost(),
			p.StdCost(), p.MinCost(), p.MaxCost(), p.MeanTime())
	}

	files, err := WriteResults(s, points)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Printf("wrote %s\n", f)
	}
	return nil
}
