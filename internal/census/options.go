package census

import (
	"fmt"
	"os"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures a traversal.
type Options struct {
	// All includes hidden (dot-prefixed) entries. Hidden directories are
	// otherwise neither counted nor descended into.
	All bool
	// Size enables on-disk size accounting and the hard-link deduplication
	// it requires. When false, entries are never stat'ed.
	Size bool
	// Filter narrows counting to files whose name matches. When set,
	// directories are not counted at all.
	Filter *Filter
	// Verbose emits diagnostics for skipped entries and directories to stderr.
	Verbose bool
	// Workers is the pool size for ParallelWalk (0 = number of CPUs).
	Workers int
	// Progress, if non-nil, periodically receives the running (files, bytes)
	// totals across all roots during a parallel walk.
	Progress func(files, bytes int64)
	// ProgressInterval controls the progress callback cadence.
	ProgressInterval time.Duration
}

// logger provides conditional diagnostic output.
type logger struct {
	enabled bool
}

// warnf prints a diagnostic to stderr if verbose output is enabled.
func (l logger) warnf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, "dircensus: "+format+"\n", args...)
	}
}

// logger returns the diagnostics sink configured by the options.
func (o Options) logger() logger {
	return logger{enabled: o.Verbose}
}
