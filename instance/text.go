// instance/text.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	av "github.com/rwyseq/rwyseq/aviation"
)

// The text format is line oriented:
//
//	runways
//	categories
//	separation row, one per category
//	number of landing aircraft
//	one line per landing aircraft
//	number of takeoff aircraft
//	one line per takeoff aircraft
//
// where each aircraft line is
//
//	callsign category input start end earliest... delay-cost early-cost
//
// with one earliest time per runway. Blank lines and lines starting
// with '#' are ignored.

type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// fields returns the whitespace-separated fields of the next non-blank
// line.
func (lr *lineReader) fields(what string) ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		f := strings.Fields(lr.sc.Text())
		if len(f) > 0 && !strings.HasPrefix(f[0], "#") {
			return f, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}
	return nil, malformed(lr.line, "unexpected end of file reading %s", what)
}

func (lr *lineReader) readInt(what string) (int, error) {
	f, err := lr.fields(what)
	if err != nil {
		return 0, err
	}
	if len(f) != 1 {
		return 0, malformed(lr.line, "expected a single value for %s, got %d", what, len(f))
	}
	v, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, malformed(lr.line, "%s: %v", what, err)
	}
	return v, nil
}

func (lr *lineReader) parseInts(what string, f []string) ([]int, error) {
	v := make([]int, len(f))
	for i, s := range f {
		var err error
		if v[i], err = strconv.Atoi(s); err != nil {
			return nil, malformed(lr.line, "%s: %v", what, err)
		}
	}
	return v, nil
}

func (lr *lineReader) airplanes(n, runways int, kind av.FlightKind) ([]*av.Airplane, error) {
	var acs []*av.Airplane
	for range n {
		f, err := lr.fields(kind.String())
		if err != nil {
			return nil, err
		}
		if len(f) != 5+runways+2 {
			return nil, malformed(lr.line, "%d fields for %s; expected %d", len(f), kind, 5+runways+2)
		}

		times, err := lr.parseInts(f[0], f[1:5+runways])
		if err != nil {
			return nil, err
		}
		ac := &av.Airplane{
			Callsign:  f[0],
			Category:  times[0],
			Kind:      kind,
			InputTime: times[1],
			StartTime: times[2],
			EndTime:   times[3],
			Earliest:  times[4:],
		}
		if ac.DelayCost, err = strconv.ParseFloat(f[5+runways], 64); err != nil {
			return nil, malformed(lr.line, "%s delay cost: %v", ac.Callsign, err)
		}
		if ac.EarlyCost, err = strconv.ParseFloat(f[6+runways], 64); err != nil {
			return nil, malformed(lr.line, "%s early cost: %v", ac.Callsign, err)
		}
		acs = append(acs, ac)
	}
	return acs, nil
}

// ReadText parses an instance in the text format.
func ReadText(r io.Reader) (*Instance, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	inst := &Instance{}

	var err error
	if inst.Runways, err = lr.readInt("runway count"); err != nil {
		return nil, err
	}
	if inst.Runways < 1 {
		return nil, malformed(lr.line, "%d runways", inst.Runways)
	}
	if inst.Categories, err = lr.readInt("category count"); err != nil {
		return nil, err
	}
	if inst.Categories < 1 {
		return nil, malformed(lr.line, "%d categories", inst.Categories)
	}

	for i := range inst.Categories {
		f, err := lr.fields("separation")
		if err != nil {
			return nil, err
		}
		if len(f) != inst.Categories {
			return nil, malformed(lr.line, "separation row %d has %d entries; expected %d", i+1, len(f),
				inst.Categories)
		}
		row, err := lr.parseInts("separation", f)
		if err != nil {
			return nil, err
		}
		inst.Separation = append(inst.Separation, row)
	}

	for _, kind := range []av.FlightKind{av.Arrival, av.Departure} {
		n, err := lr.readInt(kind.String() + " count")
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, malformed(lr.line, "%d %ss", n, kind)
		}
		acs, err := lr.airplanes(n, inst.Runways, kind)
		if err != nil {
			return nil, err
		}
		if kind == av.Arrival {
			inst.Landing = acs
		} else {
			inst.Takeoff = acs
		}
	}

	return inst, nil
}

// WriteText writes the instance in the format read by ReadText.
func WriteText(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n%d\n", inst.Runways, inst.Categories)
	for _, row := range inst.Separation {
		fmt.Fprintln(bw, joinInts(row))
	}

	for _, acs := range [][]*av.Airplane{inst.Landing, inst.Takeoff} {
		fmt.Fprintf(bw, "%d\n", len(acs))
		for _, ac := range acs {
			fmt.Fprintf(bw, "%s %d %d %d %d %s %s %s\n", ac.Callsign, ac.Category, ac.InputTime, ac.StartTime,
				ac.EndTime, joinInts(ac.Earliest), strconv.FormatFloat(ac.DelayCost, 'f', -1, 64),
				strconv.FormatFloat(ac.EarlyCost, 'f', -1, 64))
		}
	}

	return bw.Flush()
}

func joinInts(v []int) string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	return sb.String()
}
