package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const lockFileName = "storage.lock"

// fileLock provides cross-process mutual exclusion over the store using
// flock(2) on a sidecar file.
type fileLock struct {
	path string
	file *os.File
}

func newFileLock(dir string) *fileLock {
	return &fileLock{path: filepath.Join(dir, lockFileName)}
}

// lock blocks until the exclusive lock is held.
func (fl *fileLock) lock() error {
	f, err := os.OpenFile(fl.path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return fmt.Errorf("flock: %w", err)
	}
	fl.file = f
	return nil
}

func (fl *fileLock) unlock() error {
	if fl.file == nil {
		return nil
	}

	if err := unix.Flock(int(fl.file.Fd()), unix.LOCK_UN); err != nil {
		_ = fl.file.Close()
		fl.file = nil
		return fmt.Errorf("funlock: %w", err)
	}

	err := fl.file.Close()
	fl.file = nil
	return err
}
