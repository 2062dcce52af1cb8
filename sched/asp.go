// sched/asp.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sched

import (
	"fmt"
	"math"
	"slices"

	av "github.com/rwyseq/rwyseq/aviation"
	"github.com/rwyseq/rwyseq/rand"
	"github.com/rwyseq/rwyseq/util"
)

// ASP is the aircraft scheduling problem. Solutions are runway
// assignments dense against Aircraft, which holds every landing and
// takeoff ordered by scheduled time.
type ASP struct {
	Runways    int
	Categories int
	Separation av.SeparationTable
	Landing    []*av.Airplane
	Takeoff    []*av.Airplane
	Aircraft   []*av.Airplane

	rand *rand.Rand
}

var _ Problem = (*ASP)(nil)

// Landing records when and where an aircraft lands (or departs) in the
// runway simulation. Runway is 1-based.
type Landing struct {
	Time   int `msgpack:"time"`
	Runway int `msgpack:"runway"`
}

// NewASP validates its arguments and returns the corresponding problem.
// All random choices the problem makes are drawn from r.
func NewASP(runways, categories int, sep av.SeparationTable, landing, takeoff []*av.Airplane,
	r *rand.Rand) (*ASP, error) {
	var e util.ErrorLogger

	if runways < 1 {
		e.ErrorString("%d runways", runways)
	}
	if r == nil {
		e.ErrorString("no random source provided")
	}

	e.Push("separation")
	sep.Validate(categories, &e)
	e.Pop()

	validate := func(kind string, acs []*av.Airplane) {
		for i, ac := range acs {
			e.Push(fmt.Sprintf("%s %d (%s)", kind, i+1, ac.Callsign))
			ac.Validate(runways, categories, &e)
			e.Pop()
		}
	}
	validate("landing", landing)
	validate("takeoff", takeoff)

	if err := e.Err(ErrInvalidProblem); err != nil {
		return nil, err
	}

	return makeASP(runways, categories, sep, landing, takeoff, r), nil
}

func makeASP(runways, categories int, sep av.SeparationTable, landing, takeoff []*av.Airplane,
	r *rand.Rand) *ASP {
	all := make([]*av.Airplane, 0, len(landing)+len(takeoff))
	all = append(all, landing...)
	all = append(all, takeoff...)
	slices.SortStableFunc(all, func(a, b *av.Airplane) int {
		return a.ScheduledTime() - b.ScheduledTime()
	})

	return &ASP{
		Runways:    runways,
		Categories: categories,
		Separation: sep,
		Landing:    landing,
		Takeoff:    takeoff,
		Aircraft:   all,
		rand:       r,
	}
}

// Rand returns the random source the problem draws from.
func (p *ASP) Rand() *rand.Rand {
	return p.rand
}

func (p *ASP) String() string {
	return fmt.Sprintf("ASP <%d runways : %d categories : %v : %d aircraft>", p.Runways, p.Categories,
		p.Separation, len(p.Aircraft))
}

// simulate replays the assignment runway by runway in aircraft order,
// calling visit with each aircraft's index, runway, and landing time.
// The first aircraft on a runway lands at its earliest time for that
// runway; each subsequent one waits for the required separation behind
// its predecessor.
func (p *ASP) simulate(assignment []int, visit func(i int, ac *av.Airplane, runway int, t int)) {
	if len(assignment) != len(p.Aircraft) {
		panic(fmt.Sprintf("assignment of length %d for %d aircraft", len(assignment), len(p.Aircraft)))
	}

	lastTime := make([]int, p.Runways)
	lastCategory := make([]int, p.Runways) // 0: runway not yet used

	for i, rwy := range assignment {
		ac := p.Aircraft[i]
		r := rwy - 1

		t := ac.Earliest[r]
		if lastCategory[r] != 0 {
			sep := p.Separation.Between(lastCategory[r], ac.Category)
			t = max(t, lastTime[r]+sep+1)
		}

		lastTime[r], lastCategory[r] = t, ac.Category
		visit(i, ac, rwy, t)
	}
}

// LandingTimes returns the time and runway of each aircraft under the
// given assignment.
func (p *ASP) LandingTimes(assignment []int) []Landing {
	landings := make([]Landing, len(assignment))
	p.simulate(assignment, func(i int, ac *av.Airplane, runway int, t int) {
		landings[i] = Landing{Time: t, Runway: runway}
	})
	return landings
}

// Evaluate returns the total delay cost of the assignment: for each
// aircraft, the time it lands after its earliest time on the assigned
// runway multiplied by its delay cost.
func (p *ASP) Evaluate(assignment []int) float64 {
	var cost float64
	p.simulate(assignment, func(i int, ac *av.Airplane, runway int, t int) {
		cost += math.Max(0, float64(t-ac.Earliest[runway-1])*ac.DelayCost)
	})
	return cost
}

func (p *ASP) EvaluateSolution(s Solution) float64 {
	return p.Evaluate(s.Assignment)
}

// Next perturbs one randomly-chosen runway assignment by a random
// fraction of its difference from the companion's assignment at the same
// position, clamping the result to a valid runway.
func (p *ASP) Next(s, companion Solution) Solution {
	n := s.Clone()
	n.Sequence = p.Aircraft

	if len(n.Assignment) > 0 {
		i := p.rand.Intn(len(n.Assignment))
		phi := 2*p.rand.Float64() - 1
		v := float64(s.Assignment[i]) + phi*float64(s.Assignment[i]-companion.Assignment[i])
		n.Assignment[i] = util.Clamp(int(math.RoundToEven(v)), 1, p.Runways)
	}

	n.Fitness = p.Evaluate(n.Assignment)
	return n
}

// GenerateSolution assigns each aircraft to a runway chosen uniformly at
// random.
func (p *ASP) GenerateSolution() Solution {
	assignment := make([]int, len(p.Aircraft))
	for i := range assignment {
		assignment[i] = p.rand.IntRange(1, p.Runways)
	}
	return Solution{
		Assignment: assignment,
		Fitness:    p.Evaluate(assignment),
		Sequence:   p.Aircraft,
	}
}

func (p *ASP) GenerateEmptySolution() Solution {
	return EmptySolution()
}

///////////////////////////////////////////////////////////////////////////
// Decomposition

// WorkingCopy returns a problem with the same parameters whose airplane
// records are private copies, so that their earliest times may be
// tightened without affecting p. The random source is shared.
func (p *ASP) WorkingCopy() *ASP {
	clone := func(acs []*av.Airplane) []*av.Airplane {
		return util.MapSlice(acs, func(ac *av.Airplane) *av.Airplane { return ac.Clone() })
	}
	return makeASP(p.Runways, p.Categories, p.Separation.Clone(), clone(p.Landing), clone(p.Takeoff),
		p.rand)
}

// Trim returns the sub-problem containing the aircraft for which keep
// returns true. The sub-problem shares airplane records, the separation
// table, and the random source with p.
func (p *ASP) Trim(keep func(ac *av.Airplane) bool) *ASP {
	var landing, takeoff []*av.Airplane
	for _, ac := range p.Aircraft {
		if !keep(ac) {
			continue
		}
		if ac.Kind == av.Departure {
			takeoff = append(takeoff, ac)
		} else {
			landing = append(landing, ac)
		}
	}
	return makeASP(p.Runways, p.Categories, p.Separation, landing, takeoff, p.rand)
}
