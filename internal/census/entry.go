package census

import (
	"fmt"
	"io/fs"
)

// Kind classifies a directory entry.
type Kind uint8

const (
	// KindFile is a regular file.
	KindFile Kind = iota
	// KindDir is a directory.
	KindDir
	// KindSymlink is a symbolic link. Links are classified, never followed.
	KindSymlink
)

// FileID identifies a file's underlying storage object across hard-link
// aliases.
type FileID struct {
	Dev uint64
	Ino uint64
}

// Entry is a transient view of one filesystem object met during traversal.
type Entry struct {
	// Path is the entry's path as built from the traversal root.
	Path string
	// Kind is the entry's classification.
	Kind Kind
	// ID is the file's identity. Only meaningful when Identified is true.
	ID FileID
	// Identified reports whether the platform exposed a usable identity.
	Identified bool
	// Nlink is the file's hard-link count (0 when unknown).
	Nlink uint64
	// Size is the file's storage-aligned size in bytes.
	Size int64
}

// fallbackBlockSize is used when the filesystem does not report a block size.
const fallbackBlockSize = 4096

// alignedSize rounds size up to the next multiple of blockSize, reflecting
// the space a file occupies on disk rather than its logical length.
func alignedSize(size, blockSize int64) int64 {
	if blockSize <= 0 {
		blockSize = fallbackBlockSize
	}

	return (size + blockSize - 1) / blockSize * blockSize
}

// classify determines the kind of a directory entry and, for regular files
// with size accounting on, its identity and storage-aligned size. Symlinks
// are classified from the link itself; the target is never resolved.
//
// The boolean is false for entries that are neither regular files,
// directories, nor symlinks (sockets, devices, pipes); those are not counted.
// A non-nil error means the entry's metadata could not be read; the caller
// skips the entry and moves on.
func classify(path string, entry fs.DirEntry, withSize bool) (Entry, bool, error) {
	mode := entry.Type()

	switch {
	case mode&fs.ModeSymlink != 0:
		return Entry{Path: path, Kind: KindSymlink}, true, nil
	case mode.IsDir():
		return Entry{Path: path, Kind: KindDir}, true, nil
	case mode.IsRegular():
		classified := Entry{Path: path, Kind: KindFile}

		if !withSize {
			return classified, true, nil
		}

		info, err := entry.Info()
		if err != nil {
			return Entry{}, false, fmt.Errorf("reading metadata for %q: %w", path, err)
		}

		stat := statOf(info)
		classified.ID = stat.id
		classified.Identified = stat.ok
		classified.Nlink = stat.nlink
		classified.Size = alignedSize(info.Size(), stat.blockSize)

		return classified, true, nil
	default:
		return Entry{}, false, nil
	}
}
