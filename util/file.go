// util/file.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// OpenFile opens the named file for reading; if it's zstd compressed,
// the returned reader handles decompression transparently.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(path) != ".zst" {
		return f, nil
	}

	zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(0))
	if err != nil {
		f.Close()
		return nil, err
	}
	return zstdReadCloser{Decoder: zr, f: f}, nil
}

// CreateFile creates the named file for writing, compressing with zstd
// if the path ends in ".zst".
func CreateFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(path) != ".zst" {
		return f, nil
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return zstdWriteCloser{Encoder: zw, f: f}, nil
}

type zstdWriteCloser struct {
	*zstd.Encoder
	f *os.File
}

func (z zstdWriteCloser) Close() error {
	if err := z.Encoder.Close(); err != nil {
		z.f.Close()
		return err
	}
	return z.f.Close()
}

// BaseExt returns the file extension of path, ignoring a trailing
// ".zst".
func BaseExt(path string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".zst")))
}
