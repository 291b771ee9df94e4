package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/idelchi/dircensus/internal/census"
)

func sampleReports() []census.Report {
	return []census.Report{
		{Path: "beta", Files: 10, Dirs: 5, Size: 8192},
		{Path: "alpha", Files: 30, Dirs: 1, Size: 4096},
		{Path: "gamma", Files: 20, Dirs: 9, Size: 16384},
	}
}

func TestSortReports(t *testing.T) {
	tests := []struct {
		key       string
		wantFirst string
	}{
		{"", "beta"},
		{"n", "alpha"},
		{"f", "alpha"},
		{"d", "gamma"},
		{"s", "gamma"},
	}

	for _, tt := range tests {
		t.Run("key="+tt.key, func(t *testing.T) {
			reports := sampleReports()
			sortReports(reports, tt.key)

			if reports[0].Path != tt.wantFirst {
				t.Errorf("sort %q put %q first, want %q", tt.key, reports[0].Path, tt.wantFirst)
			}
		})
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	err := PrintTable(sampleReports(), true, true, &buf)
	if err != nil {
		t.Fatalf("PrintTable: %v", err)
	}

	out := buf.String()

	for _, want := range []string{"PATH", "FILES", "DIRS", "SIZE", "beta", "8.0 KiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTableHidesSuppressedColumns(t *testing.T) {
	var buf bytes.Buffer

	err := PrintTable(sampleReports(), false, false, &buf)
	if err != nil {
		t.Fatalf("PrintTable: %v", err)
	}

	out := buf.String()

	if strings.Contains(out, "DIRS") {
		t.Errorf("DIRS column should be hidden under a filter:\n%s", out)
	}
	if strings.Contains(out, "SIZE") {
		t.Errorf("SIZE column should be hidden without size accounting:\n%s", out)
	}
}

func TestPrintJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer

	reports := sampleReports()

	if err := PrintJSON(reports, &buf); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}

	var decoded []census.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}

	if len(decoded) != len(reports) || decoded[0] != reports[0] {
		t.Errorf("decoded %+v, want %+v", decoded, reports)
	}
}
