// instance/json.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instance

import (
	"encoding/json"
	"fmt"
	"io"

	av "github.com/rwyseq/rwyseq/aviation"
	"github.com/rwyseq/rwyseq/util"
)

// jsonInstance has the same fields as the text format. If
// cwt_groundspeed is given, the separation table is derived from the
// CWT wake categories at that groundspeed and aircraft categories may
// be given as CWT letters.
type jsonInstance struct {
	Runways        int                `json:"runways"`
	Categories     int                `json:"categories"`
	Separation     av.SeparationTable `json:"separation"`
	CWTGroundspeed float32            `json:"cwt_groundspeed"`
	Landing        []jsonAirplane     `json:"landing"`
	Takeoff        []jsonAirplane     `json:"takeoff"`
}

type jsonAirplane struct {
	Callsign  string       `json:"callsign"`
	Category  jsonCategory `json:"category"`
	InputTime int          `json:"input_time"`
	StartTime int          `json:"start_time"`
	EndTime   int          `json:"end_time"`
	Earliest  []int        `json:"earliest"`
	DelayCost float64      `json:"delay_cost"`
	EarlyCost float64      `json:"early_cost"`
}

// jsonCategory is either a category number or a CWT letter.
type jsonCategory struct {
	N   int
	CWT string
}

func (c *jsonCategory) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.CWT)
	}
	return json.Unmarshal(b, &c.N)
}

func (c jsonCategory) MarshalJSON() ([]byte, error) {
	if c.CWT != "" {
		return json.Marshal(c.CWT)
	}
	return json.Marshal(c.N)
}

// ReadJSON parses an instance in the JSON format.
func ReadJSON(r io.Reader) (*Instance, error) {
	var ji jsonInstance
	if err := util.UnmarshalJSON(r, &ji); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInstance, err)
	}

	var e util.ErrorLogger
	inst := &Instance{
		Runways:    ji.Runways,
		Categories: ji.Categories,
		Separation: ji.Separation,
	}

	if ji.CWTGroundspeed != 0 {
		if ji.CWTGroundspeed < 0 {
			e.ErrorString("cwt_groundspeed %f must be positive", ji.CWTGroundspeed)
		}
		if len(ji.Separation) > 0 {
			e.ErrorString("separation may not be given along with cwt_groundspeed")
		}
		if ji.Categories != 0 && ji.Categories != av.CWTCategories {
			e.ErrorString("%d categories given with cwt_groundspeed", ji.Categories)
		}
		inst.Categories = av.CWTCategories
		inst.Separation = av.CWTSeparationTable(ji.CWTGroundspeed)
	}

	convert := func(jacs []jsonAirplane, kind av.FlightKind) []*av.Airplane {
		var acs []*av.Airplane
		for i, ja := range jacs {
			e.Push(fmt.Sprintf("%s %d (%s)", kind, i+1, ja.Callsign))

			cat := ja.Category.N
			if ja.Category.CWT != "" {
				if ji.CWTGroundspeed == 0 {
					e.ErrorString("CWT category %q requires cwt_groundspeed", ja.Category.CWT)
				} else if c, err := av.CWTCategory(ja.Category.CWT); err != nil {
					e.ErrorString("%q: %v", ja.Category.CWT, err)
				} else {
					cat = c
				}
			}

			acs = append(acs, &av.Airplane{
				Callsign:  ja.Callsign,
				Category:  cat,
				Kind:      kind,
				InputTime: ja.InputTime,
				StartTime: ja.StartTime,
				EndTime:   ja.EndTime,
				Earliest:  ja.Earliest,
				DelayCost: ja.DelayCost,
				EarlyCost: ja.EarlyCost,
			})
			e.Pop()
		}
		return acs
	}
	inst.Landing = convert(ji.Landing, av.Arrival)
	inst.Takeoff = convert(ji.Takeoff, av.Departure)

	if err := e.Err(ErrMalformedInstance); err != nil {
		return nil, err
	}
	return inst, nil
}

// WriteJSON writes the instance in the format read by ReadJSON.
func WriteJSON(w io.Writer, inst *Instance) error {
	ji := jsonInstance{
		Runways:    inst.Runways,
		Categories: inst.Categories,
		Separation: inst.Separation,
	}
	convert := func(acs []*av.Airplane) []jsonAirplane {
		return util.MapSlice(acs, func(ac *av.Airplane) jsonAirplane {
			return jsonAirplane{
				Callsign:  ac.Callsign,
				Category:  jsonCategory{N: ac.Category},
				InputTime: ac.InputTime,
				StartTime: ac.StartTime,
				EndTime:   ac.EndTime,
				Earliest:  ac.Earliest,
				DelayCost: ac.DelayCost,
				EarlyCost: ac.EarlyCost,
			}
		})
	}
	ji.Landing = convert(inst.Landing)
	ji.Takeoff = convert(inst.Takeoff)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ji)
}
