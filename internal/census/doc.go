// Package census walks directory trees and aggregates, per root, the number
// of files, the number of subdirectories, and optionally the on-disk size
// they consume.
//
// Traversal runs either one root at a time on the calling goroutine (Walk)
// or across a bounded pool of workers that share one work queue spanning all
// roots (ParallelWalk). Symbolic links are classified but never followed, and
// hard-linked files are deduplicated by device and inode so their size is
// charged only once per root. Both paths produce identical totals.
package census
