package census

import "sync"

// Counter accumulates the census of a single root. Parallel workers expanding
// different directories of the same root share one Counter, so every mutation
// takes the counter's own lock; unrelated roots never contend.
type Counter struct {
	mu       sync.Mutex
	path     string
	withSize bool
	files    int64
	dirs     int64
	size     int64
	seen     map[FileID]struct{}
}

// NewCounter creates an empty Counter for the given root path. withSize
// enables on-disk size accounting and the identity tracking it needs.
func NewCounter(path string, withSize bool) *Counter {
	counter := &Counter{path: path, withSize: withSize}
	if withSize {
		counter.seen = make(map[FileID]struct{})
	}

	return counter
}

// Count applies one classified entry to the counter.
//
// Every hard-link alias increments the file count, but a file's size is added
// at most once per identity. Symlinks count as files and never contribute
// size. The seen-set is only consulted for files that can actually alias
// (nlink > 1), so trees without hard links pay nothing for deduplication.
func (c *Counter) Count(entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch entry.Kind {
	case KindDir:
		c.dirs++
	case KindSymlink:
		c.files++
	case KindFile:
		c.files++

		if !c.withSize {
			return
		}

		if entry.Identified && entry.Nlink > 1 {
			if _, dup := c.seen[entry.ID]; dup {
				return
			}

			c.seen[entry.ID] = struct{}{}
		}

		c.size += entry.Size
	}
}

// Path returns the root path this counter belongs to.
func (c *Counter) Path() string {
	return c.path
}

// Files returns the number of counted files so far.
func (c *Counter) Files() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.files
}

// Dirs returns the number of counted directories so far.
func (c *Counter) Dirs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dirs
}

// Size returns the accumulated on-disk size in bytes so far.
func (c *Counter) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.size
}

// Report is an immutable snapshot of a Counter, taken once traversal of its
// root has completed.
type Report struct {
	// Path is the root path.
	Path string `json:"path"`
	// Files is the number of counted files, symlinks and every hard-link
	// alias included.
	Files int64 `json:"n_files"`
	// Dirs is the number of directories below the root, the root excluded.
	Dirs int64 `json:"n_dirs"`
	// Size is the total on-disk size in bytes, each hard-linked file charged
	// once.
	Size int64 `json:"size"`
}

// Report returns a snapshot of the counter.
func (c *Counter) Report() Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Report{Path: c.path, Files: c.files, Dirs: c.dirs, Size: c.size}
}
