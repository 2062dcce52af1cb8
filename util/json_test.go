// util/json_test.go
// Copyright(c) 2022-2026 rwyseq contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"strings"
	"testing"
)

func TestUnmarshalJSONBytesErrorPosition(t *testing.T) {
	type rec struct {
		Runways int `json:"runways"`
	}

	var r rec
	if err := UnmarshalJSONBytes([]byte(`{"runways": 2}`), &r); err != nil || r.Runways != 2 {
		t.Fatalf("valid JSON: %v %+v", err, r)
	}

	err := UnmarshalJSONBytes([]byte("{\n  \"runways\": \"two\"\n}"), &r)
	if err == nil {
		t.Fatalf("expected type error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not report line 2", err)
	}

	err = UnmarshalJSON(strings.NewReader("{\n\n  \"runways\": 2,,\n}"), &r)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("syntax error %v does not report line 3", err)
	}
}
