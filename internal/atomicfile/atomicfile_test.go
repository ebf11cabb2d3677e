package atomicfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteNew_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssot_new.md")

	if err := WriteNew(path, []byte("content\n"), 0o644); err != nil {
		t.Fatalf("WriteNew() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content\n" {
		t.Errorf("content = %q, want %q", data, "content\n")
	}
}

func TestWriteNew_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssot_existing.md")

	if err := WriteNew(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("first WriteNew() error: %v", err)
	}

	err := WriteNew(path, []byte("second\n"), 0o644)
	var exists *ErrExists
	if !errors.As(err, &exists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "first\n" {
		t.Errorf("existing content was modified: %q", data)
	}
}

func TestWriteNew_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ssot_tmpcheck.md")

	if err := WriteNew(path, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("WriteNew() error: %v", err)
	}
	// Refused second write must not leave staging files behind either.
	_ = WriteNew(path, []byte("y\n"), 0o644)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("staging file left behind: %s", entry.Name())
		}
	}
}
