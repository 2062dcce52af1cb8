// rand/rand.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package rand provides the pseudo-random number source used throughout
// the scheduler. There is no package-level generator: every
// problem and solver is handed a *Rand at construction so that a run can
// be reproduced from its seed.
package rand

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

const pcgSequence = 0xda3e39cb94b95bdb

type Rand struct {
	r *pcg.PCG32
}

// New returns a generator seeded with the given value.
func New(seed int64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(seed)
	return r
}

// Make returns a generator seeded from the current time.
func Make() *Rand {
	return New(time.Now().UnixNano())
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), pcgSequence)
}

// Intn returns a uniformly-distributed value in [0,n).
func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// IntRange returns a uniformly-distributed value in [lo,hi].
func (r *Rand) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

func (r *Rand) Float32() float32 {
	return float32(r.r.Random()) / (1<<32 - 1)
}

// Float64 returns a value in [0,1].
func (r *Rand) Float64() float64 {
	return float64(r.r.Random()) / (1<<32 - 1)
}

// Split returns a new generator whose seed is drawn from r; it is used
// to give concurrent runs their own deterministic streams.
func (r *Rand) Split() *Rand {
	return New(int64(r.Uint32())<<32 | int64(r.Uint32()))
}

// SampleSlice uniformly randomly samples an element of a non-empty slice.
func SampleSlice[T any](r *Rand, slice []T) T {
	return slice[r.Intn(len(slice))]
}

// SampleWeighted randomly samples an element from the given slice with the
// probability of choosing each element proportional to the value returned
// by the provided callback. Non-positive weights are never chosen; false
// is returned if no element has a positive weight.
func SampleWeighted[T any](r *Rand, slice []T, weight func(T) float64) (T, bool) {
	// Weighted reservoir sampling...
	idx := -1
	var sumWt float64
	for i, v := range slice {
		w := weight(v)
		if !(w > 0) {
			continue
		}

		sumWt += w
		p := w / sumWt
		if r.Float64() < p || idx == -1 {
			idx = i
		}
	}

	if idx == -1 {
		var t T
		return t, false
	}
	return slice[idx], true
}
