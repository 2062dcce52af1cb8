// util/text_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	h, err := Hash(strings.NewReader("hello world"))
	if err != nil {
		t.Errorf("hash error: %v", err)
	}
	if !slices.Equal(h, []byte{0xb9, 0x4d, 0x27, 0xb9, 0x93, 0x4d, 0x3e, 0x08, 0xa5, 0x2e, 0x52, 0xd7, 0xda, 0x7d, 0xab,
		0xfa, 0xc4, 0x84, 0xef, 0xe3, 0x7a, 0x53, 0x80, 0xee, 0x90, 0x88, 0xf7, 0xac, 0xe2, 0xef, 0xcd, 0xe9}) {
		t.Errorf("hash mismatch")
	}

	hex, err := HashHex(strings.NewReader("hello world"))
	if err != nil {
		t.Errorf("hash error: %v", err)
	}
	if hex != "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" {
		t.Errorf("HashHex = %s", hex)
	}
}

func TestHashString64(t *testing.T) {
	if HashString64("bco") == HashString64("fcfs") {
		t.Errorf("distinct strings hash equal")
	}
	if HashString64("rhc") != HashString64("rhc") {
		t.Errorf("hash not deterministic")
	}
}
