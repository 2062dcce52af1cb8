// instance/instance.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package instance reads scheduling problem instances from disk. Three
// formats are supported: the whitespace-separated text format, an
// equivalent JSON format, and arrival lists in CSV form that are
// converted to a problem with a fixed light/medium/heavy separation
// table.
package instance

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	av "github.com/rwyseq/rwyseq/aviation"
	"github.com/rwyseq/rwyseq/rand"
	"github.com/rwyseq/rwyseq/sched"
	"github.com/rwyseq/rwyseq/util"

	"github.com/vmihailenco/msgpack/v5"
)

type Format int

const (
	FormatAuto Format = iota
	FormatText
	FormatJSON
	FormatCSV
)

func (f Format) String() string {
	return [...]string{"auto", "text", "json", "csv"}[f]
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatForPath picks the format from the file extension; anything that
// isn't JSON or CSV is taken to be text.
func FormatForPath(path string) Format {
	switch util.BaseExt(path) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	default:
		return FormatText
	}
}

// Instance is a scheduling problem as ingested, before it is validated
// and turned into a sched.ASP.
type Instance struct {
	Name       string             `json:"-" msgpack:"name"`
	Runways    int                `json:"runways" msgpack:"runways"`
	Categories int                `json:"categories" msgpack:"categories"`
	Separation av.SeparationTable `json:"separation" msgpack:"separation"`
	Landing    []*av.Airplane     `json:"landing" msgpack:"landing"`
	Takeoff    []*av.Airplane     `json:"takeoff" msgpack:"takeoff"`
}

// Load reads the instance at path; files ending in ".zst" are
// decompressed. The runway count is only used for CSV files, which
// don't specify it.
func Load(path string, format Format, runways int) (*Instance, error) {
	r, err := util.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if format == FormatAuto {
		format = FormatForPath(path)
	}

	var inst *Instance
	switch format {
	case FormatText:
		inst, err = ReadText(r)
	case FormatJSON:
		inst, err = ReadJSON(r)
	case FormatCSV:
		inst, err = ReadCSV(r, runways)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	inst.Name = strings.TrimSuffix(filepath.Base(path), ".zst")
	inst.Name = strings.TrimSuffix(inst.Name, filepath.Ext(inst.Name))
	return inst, nil
}

// Build validates the instance and returns the corresponding problem,
// which will draw its random numbers from r.
func (inst *Instance) Build(r *rand.Rand) (*sched.ASP, error) {
	return sched.NewASP(inst.Runways, inst.Categories, inst.Separation, inst.Landing, inst.Takeoff, r)
}

// Hash returns a digest of the instance contents, independent of the
// file it was loaded from.
func (inst *Instance) Hash() (string, error) {
	c := *inst
	c.Name = ""
	b, err := msgpack.Marshal(&c)
	if err != nil {
		return "", err
	}
	return util.HashHex(bytes.NewReader(b))
}

func (inst *Instance) String() string {
	return fmt.Sprintf("%s: %d runways, %d categories, %d landing, %d takeoff", inst.Name, inst.Runways,
		inst.Categories, len(inst.Landing), len(inst.Takeoff))
}

// malformed returns an error for a problem found at the given line of
// the input.
func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInstance, line, fmt.Sprintf(format, args...))
}
