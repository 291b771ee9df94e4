package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dircensus/internal/census"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// flags collects the raw flag values before validation.
type flags struct {
	all        bool
	size       bool
	pattern    string
	sequential bool
	threads    int
	sortKey    string
	output     string
	verbose    bool
}

// addFlags registers the flag surface on the given flag set.
func addFlags(set *pflag.FlagSet, values *flags) {
	set.BoolVarP(&values.all, "all", "a", false, "Include hidden (dot-prefixed) files and directories")
	set.BoolVarP(&values.size, "size", "s", false, "Compute the total on-disk size per root")
	set.StringVarP(&values.pattern, "filter", "f", "",
		"Count only files whose name matches this regex (suppresses directory counts)")
	set.BoolVar(&values.sequential, "sequential", false, "Walk roots one at a time instead of using the worker pool")
	set.IntVarP(&values.threads, "threads", "t", 0, "Number of workers for the parallel walk (0 = number of CPUs)")
	set.StringVar(&values.sortKey, "sort", "", "Sort results by: n (path), f (files), d (dirs), s (size)")
	set.StringVarP(&values.output, "output", "o", "table", "Output format: table or json")
	set.BoolVarP(&values.verbose, "verbose", "v", false, "Report skipped entries and directories on stderr")
	set.SortFlags = false
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var values flags

	cmd := &cobra.Command{
		Use:   "dircensus [flags] [path...]",
		Short: "Count files, directories, and on-disk size per directory tree",
		Long: heredoc.Doc(`
			dircensus counts the files and directories beneath one or more roots and
			can total the on-disk size they consume.

			Each root is reported independently. Symbolic links are counted as files
			without being followed, and hard-linked files are charged to the size
			total only once per root.

			By default all roots are walked together by a pool of workers;
			--sequential walks them one at a time on a single thread instead. The
			totals are identical either way.

			With --filter, only files whose name matches the regular expression are
			counted and directory counts are omitted from the output.
		`),
		Example: heredoc.Doc(`
			# Census of the current directory
			dircensus

			# On-disk size of several trees, largest first
			dircensus -s --sort s /var/log /var/cache /tmp

			# How many Go files
			dircensus -f '\.go$' .
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(values, args)
		},
	}

	addFlags(cmd.Flags(), &values)

	return cmd.Execute()
}

// run validates the configuration, drops invalid roots, and hands the valid
// ones to the traversal logic. Configuration errors (malformed filter, bad
// flag values, zero usable roots) are fatal before any traversal starts.
func run(values flags, args []string) error {
	allowedOutputs := []string{"table", "json"}
	allowedSorts := []string{"", "n", "f", "d", "s"}

	if !slices.Contains(allowedOutputs, values.output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", values.output, allowedOutputs)
	}

	if !slices.Contains(allowedSorts, values.sortKey) {
		return fmt.Errorf("invalid sort key %q: must be one of n, f, d, s", values.sortKey)
	}

	if values.threads < 0 {
		return errors.New("threads cannot be negative")
	}

	// Ordering by size is meaningless without sizes.
	if values.sortKey == "s" {
		values.size = true
	}

	var filter *census.Filter

	if values.pattern != "" {
		var err error

		filter, err = census.NewFilter(values.pattern)
		if err != nil {
			return err
		}
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	roots := make([]string, 0, len(args))

	for _, root := range args {
		info, err := os.Stat(root)

		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "dircensus: skipping %q: %v\n", root, err)
		case !info.IsDir():
			fmt.Fprintf(os.Stderr, "dircensus: skipping %q: not a directory\n", root)
		default:
			roots = append(roots, root)
		}
	}

	if len(roots) == 0 {
		return errors.New("no valid directories to scan")
	}

	opts := census.Options{
		All:     values.all,
		Size:    values.size,
		Filter:  filter,
		Verbose: values.verbose,
		Workers: values.threads,
	}

	return logic(roots, opts, settings{
		sequential: values.sequential,
		sortKey:    values.sortKey,
		output:     values.output,
		withDirs:   filter == nil,
		withSize:   values.size,
	})
}
