package census

import (
	"bytes"
	"os"
	"testing"
)

// writeFile creates a file of the given logical size.
func writeFile(t *testing.T, path string, size int) {
	t.Helper()

	if err := os.WriteFile(path, bytes.Repeat([]byte("a"), size), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// mkdir creates a directory.
func mkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

// diskSize returns the storage-aligned size the walkers should account for
// path, computed independently from the same platform metadata.
func diskSize(t *testing.T, path string) int64 {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("lstat %s: %v", path, err)
	}

	stat := statOf(info)

	return alignedSize(info.Size(), stat.blockSize)
}
