// util/generic_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	type testcase struct {
		v, lo, hi, expect int
	}
	for _, tc := range []testcase{
		{v: 0, lo: 1, hi: 3, expect: 1},
		{v: 2, lo: 1, hi: 3, expect: 2},
		{v: 7, lo: 1, hi: 3, expect: 3},
		{v: -4, lo: 1, hi: 1, expect: 1},
	} {
		if c := Clamp(tc.v, tc.lo, tc.hi); c != tc.expect {
			t.Errorf("Clamp(%d, %d, %d) = %d. Expected %d", tc.v, tc.lo, tc.hi, c, tc.expect)
		}
	}
}

func TestArgMin(t *testing.T) {
	id := func(f float64) float64 { return f }
	if i := ArgMin([]float64{}, id); i != -1 {
		t.Errorf("ArgMin of empty slice = %d. Expected -1", i)
	}
	if i := ArgMin([]float64{3, 1, 2, 1}, id); i != 1 {
		t.Errorf("ArgMin = %d. Expected first minimum at 1", i)
	}
	if i := ArgMin([]float64{math.Inf(1), 5, math.Inf(1)}, id); i != 1 {
		t.Errorf("ArgMin with infinities = %d. Expected 1", i)
	}
}

func TestMapSlice(t *testing.T) {
	s := MapSlice([]int{1, 2, 3}, func(i int) float64 { return float64(i) / 2 })
	if len(s) != 3 || s[0] != 0.5 || s[2] != 1.5 {
		t.Errorf("MapSlice = %v", s)
	}
}
