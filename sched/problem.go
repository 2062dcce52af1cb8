// sched/problem.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sched implements the aircraft scheduling problem: given a set
// of flights, a number of runways, and the wake separation required
// between consecutive operations on a runway, choose a runway for each
// flight so as to minimize the total delay cost.
package sched

// Problem is the interface that search algorithms use to work with a
// problem without knowing its representation.
type Problem interface {
	// EvaluateSolution returns the cost of the solution's assignment.
	EvaluateSolution(s Solution) float64
	// Next returns a neighbor of s, using companion to choose the
	// direction and size of the step.
	Next(s, companion Solution) Solution
	// GenerateSolution returns a random, fully-evaluated solution.
	GenerateSolution() Solution
	// GenerateEmptySolution returns a placeholder solution with
	// infinite cost.
	GenerateEmptySolution() Solution
}
