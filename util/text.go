// util/text.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
	"io"
	"strings"
)

func Hash(r io.Reader) ([]byte, error) {
	hash := sha256.New()
	_, err := io.Copy(hash, r)
	if err != nil {
		return nil, err
	}
	return hash.Sum(nil), nil
}

// HashHex returns the hex-encoded SHA-256 of the reader's contents.
func HashHex(r io.Reader) (string, error) {
	h, err := Hash(r)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h), nil
}

func HashString64(s string) uint64 {
	hash := fnv.New64a()
	io.Copy(hash, strings.NewReader(s))
	return hash.Sum64()
}
