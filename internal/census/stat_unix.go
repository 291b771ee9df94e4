//go:build !windows

package census

import (
	"io/fs"
	"syscall"
)

// statInfo holds platform-specific file metadata.
type statInfo struct {
	id        FileID
	nlink     uint64
	blockSize int64
	ok        bool // true if platform stat was available
}

// statOf extracts identity, hard-link count, and block size from file info.
func statOf(info fs.FileInfo) statInfo {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return statInfo{blockSize: fallbackBlockSize}
	}

	return statInfo{
		id:        FileID{Dev: uint64(stat.Dev), Ino: uint64(stat.Ino)}, //nolint:unconvert // Field widths vary per platform
		nlink:     uint64(stat.Nlink),                                   //nolint:unconvert // Field widths vary per platform
		blockSize: int64(stat.Blksize),                                  //nolint:unconvert // Field widths vary per platform
		ok:        true,
	}
}
