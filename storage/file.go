package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File is a [Storage] backend persisted to a single JSON file. It is the
// CLI-profile analogue of browser localStorage: values survive process
// restarts under the same path.
//
// Every Set and Remove flushes synchronously. Flush failures do not abort
// the mutation; the last error is retained and readable via [File.Err].
type File struct {
	mu       sync.Mutex
	path     string
	values   map[string]string
	flushErr error
}

// NewFile opens or creates the store at path. A missing file yields an empty
// store; a corrupt file is an error so stale credentials are never silently
// discarded.
func NewFile(path string) (*File, error) {
	f := &File{
		path:   path,
		values: make(map[string]string),
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(raw, &f.values); err != nil {
		return nil, err
	}
	return f, nil
}

// Get describes the get operation and its observable behavior.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.values[key]
	return value, ok
}

// Set describes the set operation and its observable behavior.
func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.flushLocked()
}

// Remove describes the remove operation and its observable behavior.
func (f *File) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	f.flushLocked()
}

// Err returns the most recent flush error, or nil.
func (f *File) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushErr
}

func (f *File) flushLocked() {
	raw, err := json.Marshal(f.values)
	if err != nil {
		f.flushErr = err
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		f.flushErr = err
		return
	}
	f.flushErr = os.WriteFile(f.path, raw, 0o600)
}
