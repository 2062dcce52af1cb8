// cmd/rwyseq/main.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// rwyseq assigns runways to the aircraft of a scheduling instance and
// prints the resulting landing sequence.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwyseq/rwyseq/instance"
	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/rand"
	"github.com/rwyseq/rwyseq/solver"
	"github.com/rwyseq/rwyseq/util"
)

var (
	instanceFile = flag.String("instance", "", "problem instance to solve (text, JSON, or CSV; optionally .zst compressed)")
	format       = flag.String("format", "auto", "instance format: auto, text, json, csv")
	runways      = flag.Int("runways", 3, "number of runways for CSV instances")
	solverName   = flag.String("solver", solver.BeeColonyName, "solver: "+strings.Join(solver.Names, ", "))
	rhc          = flag.Bool("rhc", false, "solve using receding horizon decomposition")
	timeWindow   = flag.Int("timewindow", 30*60, "receding horizon committed time window, in seconds")
	numWindows   = flag.Int("numwindows", 2, "receding horizon lookahead, in time windows")
	bees         = flag.Int("bees", solver.DefaultBeeColonyConfig().NumBees, "bee colony size")
	iters        = flag.Int("iters", solver.DefaultBeeColonyConfig().MaxIter, "bee colony iterations")
	trials       = flag.Int("trials", solver.DefaultBeeColonyConfig().TrialLimit, "bee colony trial limit before a source is abandoned")
	scouts       = flag.Int("scouts", solver.DefaultBeeColonyConfig().MaxScouts, "maximum bee colony scouts per iteration")
	population   = flag.Int("population", solver.DefaultGeneticConfig().PopulationSize, "genetic algorithm population size")
	generations  = flag.Int("generations", solver.DefaultGeneticConfig().Generations, "genetic algorithm generations")
	seed         = flag.Int64("seed", 0, "random seed; 0 picks one at random")
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	useCache     = flag.Bool("cache", false, "reuse cached results for the same instance, solver, and seed")
	dump         = flag.Bool("dump", false, "dump the instance and schedule")
	output       = flag.String("o", "", "write the schedule to this file (msgpack; .zst to compress)")
	convert      = flag.String("convert", "", "write the instance to this file (.json or text) and exit")
	cpuprofile   = flag.String("cpuprofile", "", "write CPU profile to file")
	memprofile   = flag.String("memprofile", "", "write memory profile to this file")
)

const maxCacheBytes = 256 * 1024 * 1024

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	profiler, err := util.CreateProfiler(*cpuprofile, *memprofile)
	if err != nil {
		lg.Errorf("%v", err)
	}
	defer profiler.Cleanup()

	if *instanceFile == "" {
		fmt.Fprintln(os.Stderr, "rwyseq: -instance must be specified")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(lg); err != nil {
		lg.Errorf("%v", err)
		profiler.Cleanup()
		os.Exit(1)
	}
}

func config() solver.Config {
	c := solver.Config{
		Solver: *solverName,
		BeeColony: solver.BeeColonyConfig{
			NumBees:    *bees,
			MaxIter:    *iters,
			TrialLimit: *trials,
			MaxScouts:  *scouts,
		},
		Genetic: solver.GeneticConfig{
			PopulationSize: *population,
			Generations:    *generations,
		},
	}
	if *rhc {
		c.Horizon = &solver.HorizonConfig{TimeWindow: *timeWindow, NumWindows: *numWindows}
	}
	return c
}

func run(lg *log.Logger) error {
	f, err := instance.ParseFormat(*format)
	if err != nil {
		return err
	}
	inst, err := instance.Load(*instanceFile, f, *runways)
	if err != nil {
		return err
	}
	lg.Infof("loaded %s", inst)

	if *convert != "" {
		return writeInstance(*convert, inst)
	}

	cfg := config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *seed == 0 {
		*seed = int64(rand.Make().Uint32())
	}

	hash, err := inst.Hash()
	if err != nil {
		return err
	}
	cachePath := fmt.Sprintf("schedules/%s-%016x.msgpack.zst", hash,
		util.HashString64(fmt.Sprintf("%s/%d", cfg, *seed)))

	var schedule *instance.Schedule
	if *useCache {
		var s instance.Schedule
		if t, err := util.CacheRetrieveObject(cachePath, &s); err == nil {
			lg.Infof("using schedule cached at %s", t.Format(time.RFC3339))
			schedule = &s
		} else if !os.IsNotExist(err) {
			lg.Warnf("%s: %v", cachePath, err)
		}
	}

	if schedule == nil {
		if schedule, err = solve(inst, hash, cfg, lg); err != nil {
			return err
		}
		if *useCache {
			if err := util.CacheStoreObject(cachePath, schedule); err != nil {
				lg.Warnf("%s: %v", cachePath, err)
			} else if err := util.CacheCullObjects(maxCacheBytes); err != nil {
				lg.Warnf("culling cache: %v", err)
			}
		}
	}

	if *dump {
		dumpSchedule(inst, schedule)
	}
	printSchedule(os.Stdout, schedule)

	if *output != "" {
		return instance.WriteSchedule(*output, schedule)
	}
	return nil
}
