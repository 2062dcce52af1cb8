// instance/csv.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	av "github.com/rwyseq/rwyseq/aviation"
)

// Arrival lists in CSV form give each flight's scheduled time of arrival
// and a light/medium/heavy wake class; they are converted using these
// separations and offsets.
var csvSeparation = av.SeparationTable{
	{82, 69, 60},
	{131, 69, 60},
	{196, 157, 96},
}

var csvCategories = map[string]int{"Light": 1, "Medium": 2, "Heavy": 3}

const (
	csvInputOffset = -40 * 60
	csvStartOffset = -20 * 60
	csvEndOffset   = 20 * 60
)

var csvFields = []string{"mdl", "category", "sta_s", "cost_5"}

// ReadCSV converts a CSV arrival list into an instance with the given
// number of runways. Every flight's earliest time on each runway is its
// scheduled arrival time.
func ReadCSV(r io.Reader, runways int) (*Instance, error) {
	if runways < 1 {
		return nil, fmt.Errorf("%w: %d runways", ErrMalformedInstance, runways)
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	// Find the index of each field we need
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedInstance, err)
	}
	var fieldIndices []int
	for _, f := range csvFields {
		idx := slices.IndexFunc(header, func(h string) bool { return strings.TrimSpace(h) == f })
		if idx == -1 {
			return nil, fmt.Errorf("%w: no %q column", ErrMalformedInstance, f)
		}
		fieldIndices = append(fieldIndices, idx)
	}

	inst := &Instance{
		Runways:    runways,
		Categories: len(csvSeparation),
		Separation: csvSeparation.Clone(),
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInstance, err)
		}

		s := make([]string, len(fieldIndices))
		for i, idx := range fieldIndices {
			s[i] = strings.TrimSpace(record[idx])
		}

		cat, ok := csvCategories[s[1]]
		if !ok {
			return nil, malformed(line, "%s: unknown category %q", s[0], s[1])
		}
		sta, err := strconv.ParseFloat(s[2], 64)
		if err != nil {
			return nil, malformed(line, "%s: sta_s: %v", s[0], err)
		}
		cost, err := strconv.ParseFloat(s[3], 64)
		if err != nil {
			return nil, malformed(line, "%s: cost_5: %v", s[0], err)
		}

		t := int(math.Round(sta))
		ac := &av.Airplane{
			Callsign:  s[0],
			Category:  cat,
			Kind:      av.Arrival,
			InputTime: t + csvInputOffset,
			StartTime: t + csvStartOffset,
			EndTime:   t + csvEndOffset,
			DelayCost: cost,
			EarlyCost: cost,
		}
		for range runways {
			ac.Earliest = append(ac.Earliest, t)
		}
		inst.Landing = append(inst.Landing, ac)
	}

	return inst, nil
}
