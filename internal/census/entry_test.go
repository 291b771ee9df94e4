package census

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestAlignedSize(t *testing.T) {
	tests := []struct {
		name      string
		size      int64
		blockSize int64
		want      int64
	}{
		{"small file rounds up", 100, 4096, 4096},
		{"one byte occupies a block", 1, 4096, 4096},
		{"empty file occupies nothing", 0, 4096, 0},
		{"exact block stays", 4096, 4096, 4096},
		{"one past a block rounds up", 4097, 4096, 8192},
		{"larger file", 5000, 4096, 8192},
		{"missing block size uses fallback", 100, 0, 4096},
		{"negative block size uses fallback", 100, -1, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alignedSize(tt.size, tt.blockSize); got != tt.want {
				t.Errorf("alignedSize(%d, %d) = %d, want %d", tt.size, tt.blockSize, got, tt.want)
			}
		})
	}
}

func TestClassifyKinds(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "file.txt"), 10)

	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	wantLink := false
	if runtime.GOOS != "windows" {
		if err := os.Symlink("file.txt", filepath.Join(root, "link")); err != nil {
			t.Fatalf("symlink: %v", err)
		}
		wantLink = true
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading root: %v", err)
	}

	kinds := make(map[string]Entry)

	for _, dirEntry := range entries {
		entry, countable, err := classify(filepath.Join(root, dirEntry.Name()), dirEntry, true)
		if err != nil {
			t.Fatalf("classify(%s): %v", dirEntry.Name(), err)
		}
		if !countable {
			t.Fatalf("classify(%s): expected a countable entry", dirEntry.Name())
		}
		kinds[dirEntry.Name()] = entry
	}

	file := kinds["file.txt"]
	if file.Kind != KindFile {
		t.Errorf("file.txt classified as %v, want KindFile", file.Kind)
	}
	if file.Size <= 0 {
		t.Errorf("file.txt has no storage size: %d", file.Size)
	}
	if runtime.GOOS != "windows" && !file.Identified {
		t.Error("file.txt has no identity on a unix platform")
	}

	if sub := kinds["sub"]; sub.Kind != KindDir || sub.Size != 0 {
		t.Errorf("sub classified as %v with size %d, want KindDir with size 0", sub.Kind, sub.Size)
	}

	if wantLink {
		if link := kinds["link"]; link.Kind != KindSymlink || link.Size != 0 {
			t.Errorf("link classified as %v with size %d, want KindSymlink with size 0", link.Kind, link.Size)
		}
	}
}

func TestClassifySkipsStatWhenSizeOff(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "file.txt"), 100)

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading root: %v", err)
	}

	entry, countable, err := classify(filepath.Join(root, "file.txt"), entries[0], false)
	if err != nil || !countable {
		t.Fatalf("classify: countable=%v err=%v", countable, err)
	}

	if entry.Size != 0 || entry.Identified {
		t.Errorf("expected no metadata without size accounting, got size=%d identified=%v",
			entry.Size, entry.Identified)
	}
}
