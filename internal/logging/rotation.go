package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// RotationConfig controls size-based rotation of the log file.
type RotationConfig struct {
	// MaxSizeMB is the size at which the file is rotated. Zero disables rotation.
	MaxSizeMB int
	// MaxBackups is how many rotated files are kept (debug.log.1, .2, ...).
	MaxBackups int
	// Compress gzips rotated files.
	Compress bool
}

// DefaultRotationConfig returns the rotation settings used when the config
// file does not override them.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  5,
		MaxBackups: 2,
		Compress:   false,
	}
}

// RotatingWriter is an io.WriteCloser that appends to a file and rotates it
// once it grows past the configured size.
type RotatingWriter struct {
	path   string
	config RotationConfig

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewRotatingWriter opens (or creates) the file at path for appending.
// Parent directories are created as needed.
func NewRotatingWriter(path string, config RotationConfig) (*RotatingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	rw := &RotatingWriter{path: path, config: config}
	if err := rw.open(); err != nil {
		return nil, err
	}
	return rw, nil
}

func (rw *RotatingWriter) open() error {
	f, err := os.OpenFile(rw.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	rw.file = f
	rw.size = info.Size()
	return nil
}

func (rw *RotatingWriter) limit() int64 {
	return int64(rw.config.MaxSizeMB) * 1024 * 1024
}

// Write appends p, rotating first when p would push the file past the limit.
func (rw *RotatingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return 0, os.ErrClosed
	}

	if limit := rw.limit(); limit > 0 && rw.size > 0 && rw.size+int64(len(p)) > limit {
		if err := rw.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := rw.file.Write(p)
	rw.size += int64(n)
	return n, err
}

// rotate closes the current file, shifts backups, and opens a fresh file.
// The caller holds rw.mu.
func (rw *RotatingWriter) rotate() error {
	if err := rw.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	rw.file = nil

	if rw.config.MaxBackups <= 0 {
		if err := os.Remove(rw.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove log file: %w", err)
		}
		return rw.open()
	}

	rw.shiftBackups()

	first := rw.backupPath(1)
	if err := os.Rename(rw.path, first); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if rw.config.Compress {
		if err := compress(first); err == nil {
			_ = os.Remove(first)
		}
	}
	return rw.open()
}

// shiftBackups moves debug.log.N to debug.log.N+1, dropping the oldest.
func (rw *RotatingWriter) shiftBackups() {
	oldest := rw.config.MaxBackups
	for _, suffix := range []string{"", ".gz"} {
		_ = os.Remove(rw.backupPath(oldest) + suffix)
	}
	for n := oldest - 1; n >= 1; n-- {
		for _, suffix := range []string{"", ".gz"} {
			src := rw.backupPath(n) + suffix
			if _, err := os.Stat(src); err == nil {
				_ = os.Rename(src, rw.backupPath(n+1)+suffix)
			}
		}
	}
}

func (rw *RotatingWriter) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", rw.path, n)
}

// compress writes path.gz next to path.
func compress(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(dst)
	if _, err := io.Copy(gz, src); err != nil {
		_ = gz.Close()
		_ = dst.Close()
		_ = os.Remove(path + ".gz")
		return err
	}
	if err := gz.Close(); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// Sync flushes the current file to disk.
func (rw *RotatingWriter) Sync() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.file == nil {
		return nil
	}
	return rw.file.Sync()
}

// Close closes the current file. Writes after Close fail with os.ErrClosed.
func (rw *RotatingWriter) Close() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.file == nil {
		return nil
	}
	err := rw.file.Close()
	rw.file = nil
	return err
}

// Size reports the number of bytes in the current file.
func (rw *RotatingWriter) Size() int64 {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.size
}

// Path returns the path of the active log file.
func (rw *RotatingWriter) Path() string {
	return rw.path
}
