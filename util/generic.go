// util/generic.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"golang.org/x/exp/constraints"
)

// Clamp returns v limited to the closed interval [lo,hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// ArgMin returns the index of the first element of s with the smallest
// key, or -1 if s is empty. Ties go to the earliest element.
func ArgMin[T any, K constraints.Ordered](s []T, key func(T) K) int {
	idx := -1
	var best K
	for i, v := range s {
		if k := key(v); idx == -1 || k < best {
			idx, best = i, k
		}
	}
	return idx
}

// MapSlice returns a newly-allocated slice holding the result of applying
// xform to each element of from.
func MapSlice[F, T any](from []F, xform func(F) T) []T {
	var to []T
	for _, item := range from {
		to = append(to, xform(item))
	}
	return to
}
