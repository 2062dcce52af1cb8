// sched/errors.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sched

import "errors"

var (
	ErrInvalidProblem = errors.New("Invalid scheduling problem")
)
