// sched/solution.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sched

import (
	"fmt"
	"math"
	"slices"

	av "github.com/rwyseq/rwyseq/aviation"
)

// Solution is a runway assignment for a sequence of aircraft together with
// its cost. Assignment[i] is the 1-based runway for Sequence[i]; Fitness
// is always the problem's evaluation of Assignment, so any code that
// changes Assignment must also recompute Fitness.
type Solution struct {
	Assignment []int          `msgpack:"assignment"`
	Fitness    float64        `msgpack:"fitness"`
	Sequence   []*av.Airplane `msgpack:"sequence"`
}

// EmptySolution returns the sentinel solution that every real solution
// beats: no assignment and infinite cost.
func EmptySolution() Solution {
	return Solution{Fitness: math.Inf(1)}
}

// IsEmpty reports whether s is the sentinel returned by EmptySolution.
func (s Solution) IsEmpty() bool {
	return s.Assignment == nil && math.IsInf(s.Fitness, 1)
}

// Better reports whether s has strictly lower cost than o. An infinite
// fitness is never better than anything.
func (s Solution) Better(o Solution) bool {
	return s.Fitness < o.Fitness
}

// Clone returns a copy of s whose assignment can be modified without
// affecting s. The aircraft sequence is shared.
func (s Solution) Clone() Solution {
	return Solution{
		Assignment: slices.Clone(s.Assignment),
		Fitness:    s.Fitness,
		Sequence:   s.Sequence,
	}
}

func (s Solution) String() string {
	return fmt.Sprintf("%v (cost %.1f)", s.Assignment, s.Fitness)
}
