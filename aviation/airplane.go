// aviation/airplane.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
	"slices"

	"github.com/rwyseq/rwyseq/util"

	"github.com/brunoga/deep"
)

type FlightKind int

const (
	Arrival FlightKind = iota
	Departure
)

func (k FlightKind) String() string {
	switch k {
	case Arrival:
		return "arrival"
	case Departure:
		return "departure"
	default:
		return "(unknown flight kind)"
	}
}

// Airplane stores the per-flight timing and cost parameters that the
// scheduler works with. All times are in integer seconds on a common
// clock.
type Airplane struct {
	Callsign string     `json:"callsign" msgpack:"callsign"`
	Category int        `json:"category" msgpack:"category"` // wake category, 1-based
	Kind     FlightKind `json:"kind" msgpack:"kind"`

	// Times as ingested: when the flight becomes known to the system and
	// the bounds of its target window. EndTime is the representative time
	// used to put all flights into one global order.
	InputTime int `json:"input_time" msgpack:"input_time"`
	StartTime int `json:"start_time" msgpack:"start_time"`
	EndTime   int `json:"end_time" msgpack:"end_time"`

	// Earliest feasible landing (or takeoff) time for each runway.
	Earliest []int `json:"earliest" msgpack:"earliest"`

	// Cost per second of landing after Earliest, and per second before
	// it. Landings never precede Earliest so only DelayCost is charged.
	DelayCost float64 `json:"delay_cost" msgpack:"delay_cost"`
	EarlyCost float64 `json:"early_cost" msgpack:"early_cost"`
}

// ScheduledTime returns the representative time that orders flights.
func (a *Airplane) ScheduledTime() int {
	return a.EndTime
}

// LatestEarliest returns the largest entry of the earliest time vector.
func (a *Airplane) LatestEarliest() int {
	return slices.Max(a.Earliest)
}

// RaiseEarliest sets the earliest time for the given 0-based runway index
// to t if that is later than the current value; it never lowers it.
func (a *Airplane) RaiseEarliest(runway, t int) {
	a.Earliest[runway] = max(a.Earliest[runway], t)
}

// Clone returns a copy of the airplane that shares no storage with it.
func (a *Airplane) Clone() *Airplane {
	c := deep.MustCopy(*a)
	return &c
}

func (a *Airplane) String() string {
	return fmt.Sprintf("%s (%s cat %d, t=%d)", a.Callsign, a.Kind, a.Category, a.EndTime)
}

// Validate records any inconsistencies between the airplane and the given
// runway and category counts.
func (a *Airplane) Validate(runways, categories int, e *util.ErrorLogger) {
	if a.Category < 1 || a.Category > categories {
		e.ErrorString("%v: %d not in [1, %d]", ErrInvalidCategory, a.Category, categories)
	}
	if len(a.Earliest) != runways {
		e.ErrorString("%v: %d entries for %d runways", ErrTimeVectorLength, len(a.Earliest), runways)
	}
	if a.DelayCost < 0 || a.EarlyCost < 0 {
		e.ErrorString("%v: delay %f, early %f", ErrNegativeCost, a.DelayCost, a.EarlyCost)
	}
}
