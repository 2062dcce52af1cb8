// aviation/errors.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "errors"

var (
	ErrInvalidCategory   = errors.New("Invalid wake category")
	ErrInvalidSeparation = errors.New("Invalid separation table")
	ErrNegativeCost      = errors.New("Negative cost")
	ErrTimeVectorLength  = errors.New("Earliest time vector length does not match runway count")
	ErrUnknownCWT        = errors.New("Unknown CWT category")
)
