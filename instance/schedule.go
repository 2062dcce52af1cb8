// instance/schedule.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instance

import (
	"time"

	"github.com/rwyseq/rwyseq/sched"
	"github.com/rwyseq/rwyseq/util"

	"github.com/vmihailenco/msgpack/v5"
)

// Schedule is a solved instance: the solution along with what was
// needed to produce it. Landings is indexed like Solution.Sequence.
type Schedule struct {
	Instance     string          `msgpack:"instance"`
	InstanceHash string          `msgpack:"instance_hash"`
	Solver       string          `msgpack:"solver"`
	Seed         int64           `msgpack:"seed"`
	Solution     sched.Solution  `msgpack:"solution"`
	Landings     []sched.Landing `msgpack:"landings"`
	Elapsed      time.Duration   `msgpack:"elapsed"`
}

// WriteSchedule saves the schedule in msgpack format, zstd compressed if
// the path ends in ".zst".
func WriteSchedule(path string, s *Schedule) error {
	w, err := util.CreateFile(path)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func ReadSchedule(path string) (*Schedule, error) {
	r, err := util.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var s Schedule
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
