// aviation/separation.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"math"

	"github.com/rwyseq/rwyseq/util"
)

// SeparationTable gives the minimum time in seconds that must pass
// between two consecutive operations on the same runway, indexed by
// [leading category-1][trailing category-1].
type SeparationTable [][]int

func (s SeparationTable) Categories() int {
	return len(s)
}

// Between returns the separation required behind a leading aircraft of
// category lead for a trailing aircraft of category trail.
func (s SeparationTable) Between(lead, trail int) int {
	return s[lead-1][trail-1]
}

// Max returns the largest separation in the table.
func (s SeparationTable) Max() int {
	m := 0
	for _, row := range s {
		for _, v := range row {
			m = max(m, v)
		}
	}
	return m
}

// Clone returns a deep copy of the table.
func (s SeparationTable) Clone() SeparationTable {
	return util.MapSlice(s, func(row []int) []int { return append([]int(nil), row...) })
}

// Validate checks that the table is categories x categories with
// non-negative entries, so that every category pair has a defined
// separation.
func (s SeparationTable) Validate(categories int, e *util.ErrorLogger) {
	if categories < 1 {
		e.ErrorString("%v: %d categories", ErrInvalidSeparation, categories)
		return
	}
	if len(s) != categories {
		e.ErrorString("%v: %d rows for %d categories", ErrInvalidSeparation, len(s), categories)
	}
	for i, row := range s {
		if len(row) != categories {
			e.ErrorString("%v: row %d has %d entries for %d categories", ErrInvalidSeparation, i+1,
				len(row), categories)
		}
		for j, v := range row {
			if v < 0 {
				e.ErrorString("%v: negative separation %d behind %d for %d", ErrInvalidSeparation, v, i+1, j+1)
			}
		}
	}
}

///////////////////////////////////////////////////////////////////////////
// CWT

// CWTCategories is the number of consolidated wake turbulence categories,
// A through I.
const CWTCategories = 9

// MinimumRadarSeparation is used when the CWT table does not require
// additional wake separation.
const MinimumRadarSeparation = 3 // nm

// CWTCategory maps a CWT letter to the 1-based category index used by
// SeparationTable.
func CWTCategory(cwt string) (int, error) {
	if len(cwt) != 1 || cwt[0] < 'A' || cwt[0] > 'I' {
		return 0, ErrUnknownCWT
	}
	return int(cwt[0]-'A') + 1, nil
}

// CWTDirectlyBehindSeparation returns the required separation in nm
// between aircraft of the two given CWT categories. If 0 is returned,
// minimum radar separation should be used.
func CWTDirectlyBehindSeparation(front, back string) float32 {
	f, ferr := CWTCategory(front)
	b, berr := CWTCategory(back)
	if ferr != nil || berr != nil {
		return 10
	}

	// 7110.126B TBL 5-5-1
	cwtBehindLookup := [CWTCategories][CWTCategories]float32{ // [front][back]
		{0, 5, 6, 6, 7, 7, 7, 8, 8},       // Behind A
		{0, 3, 4, 4, 5, 5, 5, 5, 5},       // Behind B
		{0, 0, 0, 0, 3.5, 3.5, 3.5, 5, 5}, // Behind C
		{0, 3, 4, 4, 5, 5, 5, 5, 5},       // Behind D
		{0, 0, 0, 0, 0, 0, 0, 0, 4},       // Behind E
		{0, 0, 0, 0, 0, 0, 0, 0, 0},       // Behind F
		{0, 0, 0, 0, 0, 0, 0, 0, 0},       // Behind G
		{0, 0, 0, 0, 0, 0, 0, 0, 0},       // Behind H
		{0, 0, 0, 0, 0, 0, 0, 0, 0},       // Behind I
	}
	return cwtBehindLookup[f-1][b-1]
}

// CWTSeparationTable converts the CWT distance-based separations into
// time separations for traffic crossing the threshold at the given
// groundspeed in knots.
func CWTSeparationTable(groundspeed float32) SeparationTable {
	s := make(SeparationTable, CWTCategories)
	for f := range CWTCategories {
		s[f] = make([]int, CWTCategories)
		for b := range CWTCategories {
			nm := CWTDirectlyBehindSeparation(string(rune('A'+f)), string(rune('A'+b)))
			if nm == 0 {
				nm = MinimumRadarSeparation
			}
			s[f][b] = int(math.Ceil(float64(nm) * 3600 / float64(groundspeed)))
		}
	}
	return s
}
