// log/log_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		if _, err := ParseLevel(level); err != nil {
			t.Errorf("ParseLevel(%q) returned error %v", level, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("ParseLevel(\"verbose\") should have failed")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var lg *Logger
	lg.Debug("discarded")
	lg.Debugf("discarded %d", 1)
	lg.Info("discarded")
	lg.Infof("discarded %d", 2)
	if lg.With("k", "v") != nil {
		t.Errorf("With on a nil Logger should return nil")
	}
}

func TestLoggerWritesJSON(t *testing.T) {
	dir := t.TempDir()
	lg := New("debug", dir)
	lg.Info("solver finished", "fitness", 310.0)
	lg.Debugf("window %d", 3)
	lg.With("run", 4).Info("run finished")

	f, err := os.Open(filepath.Join(dir, "rwyseq.slog"))
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()

	found, foundRun := false, false
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		if rec["msg"] == "run finished" {
			foundRun = true
			if rec["run"] != 4.0 {
				t.Errorf("run attribute = %v. Expected 4", rec["run"])
			}
		}
		if rec["msg"] == "solver finished" {
			found = true
			if rec["fitness"] != 310.0 {
				t.Errorf("fitness attribute = %v. Expected 310", rec["fitness"])
			}
			if _, ok := rec["callstack"]; !ok {
				t.Errorf("missing callstack attribute")
			}
		}
	}
	if !found || !foundRun {
		t.Errorf("did not find logged messages in %s", lg.LogFile)
	}
}

func TestCallstack(t *testing.T) {
	fr := func() []StackFrame { return Callstack(nil) }()
	if len(fr) == 0 {
		t.Fatalf("empty callstack")
	}
	for _, f := range fr {
		if strings.HasPrefix(f.Function, "github.com/rwyseq/rwyseq/") {
			t.Errorf("function %q should have module prefix trimmed", f.Function)
		}
	}
}
