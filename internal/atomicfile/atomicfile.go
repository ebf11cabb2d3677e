// Package atomicfile writes files without leaving partial content behind.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned by WriteNew when the target file already exists.
type ErrExists struct {
	Path string
}

func (e *ErrExists) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// WriteNew writes data to path, refusing to touch an existing file.
//
// The data is staged in a temporary file in the target directory and linked
// into place, so a crash mid-write never leaves a partial file at path and a
// concurrent creation of the same path makes exactly one writer win.
func WriteNew(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}

	// Fail fast before staging anything.
	if _, err := os.Lstat(path); err == nil {
		return &ErrExists{Path: path}
	} else if !os.IsNotExist(err) {
		return err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	// Best-effort; some filesystems may not support chmod here.
	_ = tmp.Chmod(perm)

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Link rather than rename: link fails if path appeared meanwhile,
	// which keeps the never-overwrite guarantee.
	if err := os.Link(tmpPath, path); err != nil {
		if os.IsExist(err) {
			return &ErrExists{Path: path}
		}
		// Some filesystems lack hard links; fall back to exclusive create.
		return writeExclusive(path, data, perm)
	}

	return nil
}

func writeExclusive(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if os.IsExist(err) {
			return &ErrExists{Path: path}
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}
