// sched/asp_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sched

import (
	"errors"
	"slices"
	"testing"

	av "github.com/rwyseq/rwyseq/aviation"
	"github.com/rwyseq/rwyseq/rand"
)

func threePlanes() []*av.Airplane {
	return []*av.Airplane{
		&av.Airplane{Callsign: "A123", Category: 3, InputTime: 120, StartTime: 0, EndTime: 400,
			Earliest: []int{1, 1}, DelayCost: 10, EarlyCost: 10},
		&av.Airplane{Callsign: "A345", Category: 1, InputTime: 0, StartTime: 0, EndTime: 100,
			Earliest: []int{1, 1}, DelayCost: 10, EarlyCost: 10},
		&av.Airplane{Callsign: "A678", Category: 2, InputTime: 120, StartTime: 0, EndTime: 200,
			Earliest: []int{1, 1}, DelayCost: 10, EarlyCost: 10},
	}
}

var threePlaneSeparation = av.SeparationTable{{5, 20, 30}, {5, 10, 20}, {5, 10, 20}}

func makeThreePlaneASP(t *testing.T, seed int64) *ASP {
	t.Helper()
	p, err := NewASP(2, 3, threePlaneSeparation, threePlanes(), nil, rand.New(seed))
	if err != nil {
		t.Fatalf("NewASP: %v", err)
	}
	return p
}

func callsigns(acs []*av.Airplane) []string {
	var cs []string
	for _, ac := range acs {
		cs = append(cs, ac.Callsign)
	}
	return cs
}

func TestASPOrdering(t *testing.T) {
	p := makeThreePlaneASP(t, 0)
	if cs := callsigns(p.Aircraft); !slices.Equal(cs, []string{"A345", "A678", "A123"}) {
		t.Errorf("aircraft order %v. Expected [A345 A678 A123]", cs)
	}
	if len(p.Landing) != 3 || len(p.Takeoff) != 0 {
		t.Errorf("got %d landings, %d takeoffs", len(p.Landing), len(p.Takeoff))
	}
}

func TestASPOrderingStable(t *testing.T) {
	planes := threePlanes()
	for _, ac := range planes {
		ac.EndTime = 50
	}
	dep := &av.Airplane{Callsign: "D1", Category: 1, Kind: av.Departure, EndTime: 50, Earliest: []int{0, 0}}
	p, err := NewASP(2, 3, threePlaneSeparation, planes, []*av.Airplane{dep}, rand.New(0))
	if err != nil {
		t.Fatal(err)
	}
	if cs := callsigns(p.Aircraft); !slices.Equal(cs, []string{"A123", "A345", "A678", "D1"}) {
		t.Errorf("aircraft order %v with equal times. Expected input order", cs)
	}
}

func TestEvaluate(t *testing.T) {
	p := makeThreePlaneASP(t, 0)

	for _, tc := range []struct {
		assignment []int
		cost       float64
	}{
		{[]int{1, 2, 1}, 310},
		{[]int{1, 1, 1}, 630},
		{[]int{1, 2, 2}, 210},
		{[]int{2, 2, 2}, 630},
	} {
		if c := p.Evaluate(tc.assignment); c != tc.cost {
			t.Errorf("Evaluate(%v) = %f. Expected %f", tc.assignment, c, tc.cost)
		}
	}
}

func TestEvaluateNoAircraft(t *testing.T) {
	p, err := NewASP(2, 3, threePlaneSeparation, nil, nil, rand.New(0))
	if err != nil {
		t.Fatal(err)
	}
	if c := p.Evaluate([]int{}); c != 0 {
		t.Errorf("Evaluate of empty assignment = %f. Expected 0", c)
	}
	s := p.GenerateSolution()
	if n := p.Next(s, s); len(n.Assignment) != 0 || n.Fitness != 0 {
		t.Errorf("Next on empty problem = %v", n)
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	p := makeThreePlaneASP(t, 0)
	defer func() {
		if recover() == nil {
			t.Errorf("Evaluate with short assignment did not panic")
		}
	}()
	p.Evaluate([]int{1, 2})
}

func TestLandingTimes(t *testing.T) {
	p := makeThreePlaneASP(t, 0)
	expect := []Landing{{Time: 1, Runway: 1}, {Time: 1, Runway: 2}, {Time: 32, Runway: 1}}
	if l := p.LandingTimes([]int{1, 2, 1}); !slices.Equal(l, expect) {
		t.Errorf("LandingTimes = %v. Expected %v", l, expect)
	}

	// Earliest times on the assigned runway are never violated, and the
	// separation behind the previous aircraft on the runway is respected.
	r := rand.New(42)
	for range 50 {
		a := []int{r.IntRange(1, 2), r.IntRange(1, 2), r.IntRange(1, 2)}
		l := p.LandingTimes(a)
		prev := map[int]int{}
		for i, ac := range p.Aircraft {
			if l[i].Time < ac.Earliest[a[i]-1] {
				t.Errorf("%v: %s lands at %d before earliest %d", a, ac.Callsign, l[i].Time, ac.Earliest[a[i]-1])
			}
			if j, ok := prev[a[i]]; ok {
				sep := p.Separation.Between(p.Aircraft[j].Category, ac.Category)
				if l[i].Time <= l[j].Time+sep {
					t.Errorf("%v: %s at %d too close behind %s at %d", a, ac.Callsign, l[i].Time,
						p.Aircraft[j].Callsign, l[j].Time)
				}
			}
			prev[a[i]] = i
		}
	}
}

func TestNext(t *testing.T) {
	planes := threePlanes()
	var seq []*av.Airplane
	for i := range 7 {
		seq = append(seq, planes[i%3])
	}
	p, err := NewASP(2, 3, threePlaneSeparation, seq, nil, rand.New(7))
	if err != nil {
		t.Fatal(err)
	}

	s := Solution{Assignment: []int{1, 2, 1, 2, 1, 1, 1}}
	s.Fitness = p.EvaluateSolution(s)
	c := Solution{Assignment: []int{1, 1, 1, 1, 1, 2, 1}}
	c.Fitness = p.EvaluateSolution(c)
	orig := slices.Clone(s.Assignment)

	for range 200 {
		n := p.Next(s, c)
		if len(n.Assignment) != len(s.Assignment) {
			t.Fatalf("Next changed assignment length to %d", len(n.Assignment))
		}
		diffs := 0
		for i, rwy := range n.Assignment {
			if rwy < 1 || rwy > p.Runways {
				t.Errorf("Next produced runway %d", rwy)
			}
			if rwy != s.Assignment[i] {
				diffs++
			}
		}
		if diffs > 1 {
			t.Errorf("Next changed %d positions: %v -> %v", diffs, s.Assignment, n.Assignment)
		}
		if f := p.Evaluate(n.Assignment); f != n.Fitness {
			t.Errorf("Next fitness %f, evaluates to %f", n.Fitness, f)
		}
	}
	if !slices.Equal(s.Assignment, orig) {
		t.Errorf("Next modified its input: %v", s.Assignment)
	}
}

func TestNextSameCompanion(t *testing.T) {
	p := makeThreePlaneASP(t, 3)
	s := Solution{Assignment: []int{2, 1, 2}}
	s.Fitness = p.EvaluateSolution(s)
	for range 20 {
		if n := p.Next(s, s); !slices.Equal(n.Assignment, s.Assignment) || n.Fitness != s.Fitness {
			t.Errorf("Next(s, s) = %v. Expected %v", n, s)
		}
	}
}

func TestGenerateSolution(t *testing.T) {
	p := makeThreePlaneASP(t, 11)
	q := makeThreePlaneASP(t, 11)

	for range 20 {
		s, u := p.GenerateSolution(), q.GenerateSolution()
		if !slices.Equal(s.Assignment, u.Assignment) {
			t.Errorf("same seed gave %v and %v", s.Assignment, u.Assignment)
		}
		if len(s.Assignment) != 3 {
			t.Errorf("assignment length %d", len(s.Assignment))
		}
		for _, rwy := range s.Assignment {
			if rwy < 1 || rwy > 2 {
				t.Errorf("runway %d out of range", rwy)
			}
		}
		if s.Fitness != p.Evaluate(s.Assignment) {
			t.Errorf("fitness %f does not match evaluation", s.Fitness)
		}
	}

	if e := p.GenerateEmptySolution(); !e.IsEmpty() || !p.GenerateSolution().Better(e) {
		t.Errorf("empty solution %v not beaten by a generated one", e)
	}
}

func TestNewASPValidation(t *testing.T) {
	for _, tc := range []struct {
		name    string
		runways int
		cats    int
		sep     av.SeparationTable
		mutate  func(acs []*av.Airplane)
		r       *rand.Rand
	}{
		{name: "no runways", runways: 0, cats: 3, sep: threePlaneSeparation, r: rand.New(0)},
		{name: "nil rand", runways: 2, cats: 3, sep: threePlaneSeparation},
		{name: "short separation", runways: 2, cats: 3, sep: av.SeparationTable{{1, 2, 3}, {1, 2, 3}}, r: rand.New(0)},
		{name: "category", runways: 2, cats: 3, sep: threePlaneSeparation, r: rand.New(0),
			mutate: func(acs []*av.Airplane) { acs[0].Category = 4 }},
		{name: "earliest", runways: 2, cats: 3, sep: threePlaneSeparation, r: rand.New(0),
			mutate: func(acs []*av.Airplane) { acs[1].Earliest = []int{1} }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			planes := threePlanes()
			if tc.mutate != nil {
				tc.mutate(planes)
			}
			_, err := NewASP(tc.runways, tc.cats, tc.sep, planes, nil, tc.r)
			if !errors.Is(err, ErrInvalidProblem) {
				t.Errorf("NewASP error %v. Expected ErrInvalidProblem", err)
			}
		})
	}
}

func TestWorkingCopy(t *testing.T) {
	p := makeThreePlaneASP(t, 0)
	w := p.WorkingCopy()

	if w.Rand() != p.Rand() {
		t.Errorf("working copy does not share the random source")
	}
	for i, ac := range w.Aircraft {
		if ac == p.Aircraft[i] {
			t.Errorf("working copy shares airplane %s", ac.Callsign)
		}
		ac.RaiseEarliest(0, 500)
	}
	for _, ac := range p.Aircraft {
		if ac.Earliest[0] != 1 {
			t.Errorf("raising working copy earliest changed %s to %v", ac.Callsign, ac.Earliest)
		}
	}
}

func TestTrim(t *testing.T) {
	p := makeThreePlaneASP(t, 0)
	sub := p.Trim(func(ac *av.Airplane) bool { return ac.EndTime >= 200 })

	if cs := callsigns(sub.Aircraft); !slices.Equal(cs, []string{"A678", "A123"}) {
		t.Errorf("trimmed aircraft %v. Expected [A678 A123]", cs)
	}
	if sub.Aircraft[0] != p.Aircraft[1] {
		t.Errorf("trimmed problem does not share airplane records")
	}
	if sub.Rand() != p.Rand() || sub.Runways != p.Runways {
		t.Errorf("trimmed problem parameters differ")
	}
	if c := sub.Evaluate([]int{1, 1}); c != 210 {
		t.Errorf("trimmed Evaluate = %f", c)
	}
}
