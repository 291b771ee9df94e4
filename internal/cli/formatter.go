package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dircensus/internal/census"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// sortReports orders reports according to the sort key: by root path
// ascending, or by file count, directory count, or size descending. An empty
// key keeps input order.
func sortReports(reports []census.Report, key string) {
	switch key {
	case "n":
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Path < reports[j].Path
		})
	case "f":
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Files > reports[j].Files
		})
	case "d":
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Dirs > reports[j].Dirs
		})
	case "s":
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Size > reports[j].Size
		})
	}
}

// PrintJSON outputs the per-root reports in JSON format.
func PrintJSON(reports []census.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the per-root reports in human-readable table format.
// The DIRS column is omitted when a filter suppressed directory counting,
// and the SIZE column is only shown when sizes were computed.
func PrintTable(reports []census.Report, withDirs, withSize bool, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprint(w, "PATH\tFILES")

	if withDirs {
		fmt.Fprint(w, "\tDIRS")
	}

	if withSize {
		fmt.Fprint(w, "\tSIZE")
	}

	fmt.Fprintln(w)

	for _, report := range reports {
		fmt.Fprintf(w, "%s\t%d", report.Path, report.Files)

		if withDirs {
			fmt.Fprintf(w, "\t%d", report.Dirs)
		}

		if withSize {
			fmt.Fprintf(w, "\t%s", humanize.IBytes(uint64(report.Size))) //nolint:gosec // Size is always positive
		}

		fmt.Fprintln(w)
	}

	return w.Flush()
}
