package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/kanban/internal/errors"
)

// StoreFileName is the key/value file kept in the state directory.
const StoreFileName = "storage.json"

// Store is a file-backed string key/value store. It is safe for use by
// multiple goroutines and multiple processes.
type Store struct {
	dir  string
	path string
}

// NewStore opens the store in dir, creating the directory if needed. The
// file itself is created on first write.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &Store{
		dir:  dir,
		path: filepath.Join(dir, StoreFileName),
	}, nil
}

// Path returns the path of the store file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key. ok is false when the key is absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	err = s.withLock(func() error {
		entries, rerr := s.read()
		if rerr != nil {
			return rerr
		}
		value, ok = entries[key]
		return nil
	})
	return value, ok, err
}

// Entries returns a copy of every stored key/value pair.
func (s *Store) Entries() (map[string]string, error) {
	var entries map[string]string
	err := s.withLock(func() error {
		var rerr error
		entries, rerr = s.read()
		return rerr
	})
	return entries, err
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	return s.Update(key, func(string, bool) (string, bool, error) {
		return value, true, nil
	})
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	return s.Update(key, func(string, bool) (string, bool, error) {
		return "", false, nil
	})
}

// UpdateFunc receives the current value of a key and returns the new value.
// Returning keep=false deletes the key.
type UpdateFunc func(old string, exists bool) (value string, keep bool, err error)

// Update performs a read-modify-write of one key while holding the store
// lock, so no other writer can interleave. A corrupted store file is
// replaced by a fresh one holding only the updated key.
func (s *Store) Update(key string, fn UpdateFunc) error {
	return s.withLock(func() error {
		entries, err := s.read()
		if err != nil {
			if !errors.Is(err, errors.ErrStoreCorrupted) {
				return err
			}
			entries = map[string]string{}
		}

		old, exists := entries[key]
		value, keep, err := fn(old, exists)
		if err != nil {
			return err
		}

		if keep {
			if exists && old == value {
				return nil
			}
			entries[key] = value
		} else {
			if !exists {
				return nil
			}
			delete(entries, key)
		}
		return s.write(entries)
	})
}

func (s *Store) withLock(fn func() error) error {
	fl := newFileLock(s.dir)
	if err := fl.lock(); err != nil {
		return fmt.Errorf("acquire store lock: %w", err)
	}
	defer func() { _ = fl.unlock() }()
	return fn()
}

// read loads the entries. A missing file is an empty store. The caller
// holds the lock.
func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewStateError("decode store", errors.Join(errors.ErrStoreCorrupted, err)).WithPath(s.path)
	}
	return entries, nil
}

// write replaces the store file atomically. The caller holds the lock.
func (s *Store) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
