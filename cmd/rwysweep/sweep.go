// cmd/rwysweep/sweep.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rwyseq/rwyseq/instance"
	"github.com/rwyseq/rwyseq/log"
	"github.com/rwyseq/rwyseq/rand"
	"github.com/rwyseq/rwyseq/solver"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Point holds the results of all runs for one value of the swept
// parameter. Times are in seconds.
type Point struct {
	Value int
	Costs []float64
	Times []float64
}

func (p Point) MeanCost() float64 { return stat.Mean(p.Costs, nil) }
func (p Point) StdCost() float64  { return stat.StdDev(p.Costs, nil) }
func (p Point) MinCost() float64  { return floats.Min(p.Costs) }
func (p Point) MaxCost() float64  { return floats.Max(p.Costs) }
func (p Point) MeanTime() float64 { return stat.Mean(p.Times, nil) }

// RunSweep runs the sweep's solver s.Runs times for each parameter
// value, using up to s.Workers goroutines. Each run gets its own random
// source, seeded from s.Seed, so results don't depend on scheduling.
func RunSweep(ctx context.Context, s *Sweep, inst *instance.Instance, lg *log.Logger) ([]Point, error) {
	values := s.Values()
	points := make([]Point, len(values))

	seeds := rand.New(s.Seed)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.Workers)

	for i, v := range values {
		cfg, err := s.SolverConfig(v)
		if err != nil {
			return nil, err
		}
		points[i] = Point{
			Value: v,
			Costs: make([]float64, s.Runs),
			Times: make([]float64, s.Runs),
		}

		for run := range s.Runs {
			r := seeds.Split()
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				p, err := inst.Build(r)
				if err != nil {
					return err
				}

				rlg := lg.With(slog.String("parameter", s.Parameter), slog.Int("value", v), slog.Int("run", run))
				start := time.Now()
				sol, _, err := solver.Solve(p, cfg, rlg)
				if err != nil {
					return fmt.Errorf("%s = %d, run %d: %w", s.Parameter, v, run, err)
				}
				points[i].Costs[run] = sol.Fitness
				points[i].Times[run] = time.Since(start).Seconds()
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, pt := range points {
		lg.Info("sweep point", slog.String("parameter", s.Parameter), slog.Int("value", pt.Value),
			slog.Float64("mean_cost", pt.MeanCost()), slog.Float64("mean_time", pt.MeanTime()))
	}
	return points, nil
}

// WriteCSV writes one row of summary statistics per parameter value.
func WriteCSV(path string, param string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{param, "mean_cost", "std_cost", "min_cost", "max_cost", "mean_time_s"})
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for _, p := range points {
		w.Write([]string{strconv.Itoa(p.Value), ff(p.MeanCost()), ff(p.StdCost()), ff(p.MinCost()),
			ff(p.MaxCost()), ff(p.MeanTime())})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// WritePlot saves a PNG line plot of y against the parameter value.
func WritePlot(path, title, param, ylabel string, points []Point, y func(Point) float64) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = param
	p.Y.Label.Text = ylabel

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i].X = float64(pt.Value)
		pts[i].Y = y(pt)
	}
	if err := plotutil.AddLinePoints(p, ylabel, pts); err != nil {
		return err
	}
	p.Legend.ThumbnailWidth = 0.5 * vg.Inch

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// WriteResults writes the CSV summary and cost and time plots to the
// sweep's output directory.
func WriteResults(s *Sweep, points []Point) ([]string, error) {
	if err := os.MkdirAll(s.Output, os.ModePerm); err != nil {
		return nil, err
	}

	base := filepath.Join(s.Output, s.Name)
	files := []string{base + ".csv", base + "_cost.png", base + "_time.png"}
	title := s.Solver.String()

	if err := WriteCSV(files[0], s.Parameter, points); err != nil {
		return nil, err
	}
	if err := WritePlot(files[1], title+" cost", s.Parameter, "Cost", points, Point.MeanCost); err != nil {
		return nil, err
	}
	if err := WritePlot(files[2], title+" time", s.Parameter, "Time (s)", points, Point.MeanTime); err != nil {
		return nil, err
	}
	return files, nil
}
