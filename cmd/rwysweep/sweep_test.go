// cmd/rwysweep/sweep_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rwyseq/rwyseq/instance"
)

const threePlaneText = `2
3
5 20 30
5 10 20
5 10 20
3
A123 3 120 0 400 1 1 10 10
A345 1 0 0 100 1 1 10 10
A678 2 120 0 200 1 1 10 10
0
`

func writeSweep(t *testing.T, dir, yaml string) string {
	t.Helper()
	path := filepath.Join(dir, "sweep.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSweep(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadSweep(writeSweep(t, dir, `
instance: alp.csv
solver: bco
bco: {bees: 50, iterations: 20}
rhc: {time_window: 1800, num_windows: 2}
parameter: trial_limit
lower: 1
upper: 6
step: 2
`))
	if err != nil {
		t.Fatal(err)
	}

	if s.Runs != 10 || s.Runways != 3 || s.Workers < 1 || s.Name != "rhc_trial_limit" {
		t.Errorf("defaults not applied: %+v", s)
	}
	if !slices.Equal(s.Values(), []int{1, 3, 5}) {
		t.Errorf("Values() = %v. Expected [1 3 5]", s.Values())
	}
	if s.Solver.BeeColony.NumBees != 50 || s.Solver.BeeColony.MaxScouts != 1 {
		t.Errorf("bee colony config %+v", s.Solver.BeeColony)
	}

	c, err := s.SolverConfig(5)
	if err != nil {
		t.Fatal(err)
	}
	if c.BeeColony.TrialLimit != 5 || c.Horizon.TimeWindow != 1800 {
		t.Errorf("solver config %+v", c)
	}

	c, err = (&Sweep{Solver: s.Solver, Parameter: "time_window"}).SolverConfig(600)
	if err != nil {
		t.Fatal(err)
	}
	if c.Horizon.TimeWindow != 600 || s.Solver.Horizon.TimeWindow != 1800 {
		t.Errorf("sweeping time window modified the base config")
	}
}

func TestLoadSweepErrors(t *testing.T) {
	dir := t.TempDir()
	for _, yaml := range []string{
		"instance: a.txt\nparameter: colour\nupper: 3\n",
		"instance: a.txt\nparameter: time_window\nlower: 60\nupper: 120\n",
		"instance: a.txt\nparameter: bees\nlower: 0\nupper: 4\n",
		"parameter: bees\nlower: 2\nupper: 4\n",
		"instance: a.txt\nparameter: bees\nlower: 5\nupper: 4\n",
	} {
		if _, err := LoadSweep(writeSweep(t, dir, yaml)); !errors.Is(err, ErrInvalidSweep) {
			t.Errorf("%q: error %v. Expected ErrInvalidSweep", yaml, err)
		}
	}

	if _, err := LoadSweep(writeSweep(t, dir, "instance: a.txt\nbogus: 1\n")); err == nil {
		t.Errorf("unknown field accepted")
	}
}

func TestRunSweep(t *testing.T) {
	dir := t.TempDir()
	instPath := filepath.Join(dir, "three.txt")
	if err := os.WriteFile(instPath, []byte(threePlaneText), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSweep(writeSweep(t, dir, `
instance: `+instPath+`
solver: ga
ga: {population: 6}
parameter: generations
lower: 0
upper: 10
step: 5
runs: 3
workers: 2
seed: 7
output: `+filepath.Join(dir, "out")+`
`))
	if err != nil {
		t.Fatal(err)
	}
	inst, err := instance.Load(s.Instance, instance.FormatAuto, s.Runways)
	if err != nil {
		t.Fatal(err)
	}

	points, err := RunSweep(context.Background(), s, inst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 || points[0].Value != 0 || points[1].Value != 5 {
		t.Fatalf("points %+v", points)
	}
	for _, p := range points {
		if len(p.Costs) != 3 || p.MinCost() < 210 {
			t.Errorf("costs %v below the optimum", p.Costs)
		}
	}

	again, err := RunSweep(context.Background(), s, inst, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range points {
		if !slices.Equal(points[i].Costs, again[i].Costs) {
			t.Errorf("same seed gave costs %v and %v", points[i].Costs, again[i].Costs)
		}
	}

	files, err := WriteResults(s, points)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if fi, err := os.Stat(f); err != nil || fi.Size() == 0 {
			t.Errorf("%s: not written (%v)", f, err)
		}
	}

	f, err := os.Open(files[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || strings.Join(rows[0], ",") != "generations,mean_cost,std_cost,min_cost,max_cost,mean_time_s" {
		t.Errorf("CSV rows %v", rows)
	}
}
