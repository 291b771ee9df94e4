//go:build windows

package census

import "io/fs"

// statInfo holds platform-specific file metadata.
type statInfo struct {
	id        FileID
	nlink     uint64
	blockSize int64
	ok        bool // true if platform stat was available
}

// statOf on Windows has no device+inode view of the file, so hard-link
// deduplication is disabled and sizes are aligned to the fallback block size.
func statOf(_ fs.FileInfo) statInfo {
	return statInfo{blockSize: fallbackBlockSize}
}
