// util/cache_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestCacheStoreRetrieve(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CacheDirEnv, dir)

	type result struct {
		Assignment []int
		Fitness    float64
	}
	in := result{Assignment: []int{1, 2, 2}, Fitness: 210}
	if err := CacheStoreObject("results/abc", in); err != nil {
		t.Fatalf("CacheStoreObject: %v", err)
	}

	var out result
	if _, err := CacheRetrieveObject("results/abc", &out); err != nil {
		t.Fatalf("CacheRetrieveObject: %v", err)
	}
	if out.Fitness != in.Fitness || !slices.Equal(out.Assignment, in.Assignment) {
		t.Errorf("retrieved %+v. Expected %+v", out, in)
	}

	if _, err := CacheRetrieveObject("results/missing", &out); !os.IsNotExist(err) {
		t.Errorf("missing object: got error %v", err)
	}
}

func TestCacheCullObjects(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CacheDirEnv, dir)

	for _, name := range []string{"a", "b", "c"} {
		if err := CacheStoreObject(name, make([]int, 1000)); err != nil {
			t.Fatalf("CacheStoreObject: %v", err)
		}
	}
	if err := CacheCullObjects(0); err != nil {
		t.Fatalf("CacheCullObjects: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty cache after culling to 0 bytes, found %d entries in %s", len(entries),
			filepath.Base(dir))
	}
}
