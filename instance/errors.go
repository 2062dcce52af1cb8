// instance/errors.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instance

import "errors"

var (
	ErrMalformedInstance = errors.New("Malformed instance")
	ErrUnknownFormat     = errors.New("Unknown instance format")
)
