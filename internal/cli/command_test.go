package cli

import (
	"path/filepath"
	"testing"
)

func TestRunRejectsBadConfiguration(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name   string
		values flags
		args   []string
	}{
		{"invalid output format", flags{output: "xml"}, nil},
		{"invalid sort key", flags{output: "table", sortKey: "x"}, nil},
		{"negative thread count", flags{output: "table", threads: -1}, nil},
		{"malformed filter pattern", flags{output: "table", pattern: "("}, nil},
		{"no valid roots", flags{output: "table"}, []string{missing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.values, tt.args); err == nil {
				t.Error("expected a configuration error before any traversal")
			}
		})
	}
}
