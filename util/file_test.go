// util/file_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"io"
	"path/filepath"
	"testing"
)

func TestCreateOpenFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.txt", "packed.txt.zst"} {
		path := filepath.Join(dir, name)

		w, err := CreateFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(w, "2\n3\n"); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		r, err := OpenFile(path)
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "2\n3\n" {
			t.Errorf("%s: read %q. Expected %q", name, b, "2\n3\n")
		}
	}

	if _, err := OpenFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Errorf("OpenFile of missing file did not fail")
	}
}

func TestBaseExt(t *testing.T) {
	for path, ext := range map[string]string{
		"alp_7_50.csv":      ".csv",
		"instance.JSON.zst": ".json",
		"dir.v2/instance":   "",
		"instance.txt.zst":  ".txt",
		"instance.zst":      "",
	} {
		if e := BaseExt(path); e != ext {
			t.Errorf("BaseExt(%q) = %q. Expected %q", path, e, ext)
		}
	}
}
