package census

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Walker lazily produces the entries below a single root in depth-first
// order. Its state is an explicit stack of pending directories plus a cursor
// into the currently open one, so nothing beyond the open directory is held
// in memory. A Walker is single-use; create a new one to traverse again.
type Walker struct {
	opts    Options
	log     logger
	pending []string
	entries []fs.DirEntry
	dir     string
}

// NewWalker creates a Walker over root.
func NewWalker(root string, opts Options) *Walker {
	return &Walker{
		opts:    opts,
		log:     opts.logger(),
		pending: []string{root},
	}
}

// Next produces the next entry. It returns false once the root is exhausted.
//
// A directory that cannot be opened or read is fatal for the traversal,
// since a partial count of a root is worse than no count. An entry whose
// metadata cannot be read is skipped and reported through the verbose
// diagnostics; the traversal continues.
func (w *Walker) Next() (Entry, bool, error) {
	for {
		for len(w.entries) == 0 {
			if len(w.pending) == 0 {
				return Entry{}, false, nil
			}

			last := len(w.pending) - 1
			dir := w.pending[last]
			w.pending = w.pending[:last]

			entries, err := os.ReadDir(dir)
			if err != nil {
				return Entry{}, false, fmt.Errorf("reading directory %q: %w", dir, err)
			}

			w.dir = dir
			w.entries = entries
		}

		dirEntry := w.entries[0]
		w.entries = w.entries[1:]

		if !w.opts.All && hidden(dirEntry.Name()) {
			continue
		}

		entry, countable, err := classify(filepath.Join(w.dir, dirEntry.Name()), dirEntry, w.opts.Size)
		if err != nil {
			w.log.warnf("skipping entry: %v", err)

			continue
		}

		if !countable {
			continue
		}

		if entry.Kind == KindDir {
			w.pending = append(w.pending, entry.Path)
		}

		return entry, true, nil
	}
}

// hidden reports whether a name is dot-prefixed.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Walk traverses root sequentially and returns its completed Counter.
func Walk(root string, opts Options) (*Counter, error) {
	counter := NewCounter(root, opts.Size)
	walker := NewWalker(root, opts)

	for {
		entry, more, err := walker.Next()
		if err != nil {
			return nil, err
		}

		if !more {
			return counter, nil
		}

		countEntry(counter, entry, opts)
	}
}

// countEntry applies the filter policy before handing an entry to the
// counter: with a filter active only matching non-directory entries count,
// and directories are not counted at all.
func countEntry(counter *Counter, entry Entry, opts Options) {
	if opts.Filter != nil {
		if entry.Kind == KindDir {
			return
		}

		if !opts.Filter.Matches(filepath.Base(entry.Path)) {
			return
		}
	}

	counter.Count(entry)
}
