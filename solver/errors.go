// solver/errors.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package solver

import "errors"

var (
	ErrInvalidParameters = errors.New("Invalid solver parameters")
	ErrInvalidSolution   = errors.New("Solver returned an invalid solution")
	ErrNoAircraft        = errors.New("No aircraft to schedule")
	ErrTooFewBees        = errors.New("At least two bees are required")
)
