package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dircensus/internal/census"
)

// settings carries output-side configuration the core does not need.
type settings struct {
	sequential bool
	sortKey    string
	output     string
	withDirs   bool
	withSize   bool
}

func logic(roots []string, opts census.Options, set settings) error {
	enableProgress := !set.sequential &&
		strings.ToLower(set.output) != "json" &&
		!opts.Verbose &&
		isatty.IsTerminal(os.Stderr.Fd())

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		opts.Progress = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	reports := make([]census.Report, 0, len(roots))

	if set.sequential {
		for _, root := range roots {
			counter, err := census.Walk(root, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "dircensus: %v\n", err)

				continue
			}

			reports = append(reports, counter.Report())
		}
	} else {
		for _, counter := range census.ParallelWalk(roots, opts) {
			reports = append(reports, counter.Report())
		}
	}

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if len(reports) == 0 {
		return errors.New("no roots could be scanned")
	}

	sortReports(reports, set.sortKey)

	switch strings.ToLower(set.output) {
	case "json":
		return PrintJSON(reports, os.Stdout)
	default:
		return PrintTable(reports, set.withDirs, set.withSize, os.Stdout)
	}
}
