// Package storage provides the key-value bridge the state store persists
// through. It is the local stand-in for what a browser would keep in
// localStorage: two small string slots, read at startup and written on every
// mutation.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys used by the state store
const (
	KeyAddedRepositories = "addedRepositories"
	KeyMode              = "mode"
)

// KV is the persistence bridge. Get reports absence through its second
// return value; Set overwrites unconditionally.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryKV is an in-memory KV, used in tests and for ephemeral runs
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory KV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// FileKV keeps all slots in a single JSON object file. The file is read
// lazily on first access and rewritten in full on every Set.
type FileKV struct {
	mu       sync.Mutex
	filePath string
	values   map[string]string
	loaded   bool
}

// NewFileKV creates a file-backed KV at the given path
func NewFileKV(path string) *FileKV {
	return &FileKV{filePath: path}
}

// DefaultStatePath returns the default location for the state file,
// under the user's config directory.
func DefaultStatePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "adrgrip", "state.json")
}

func (f *FileKV) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return "", false
	}
	v, ok := f.values[key]
	return v, ok
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}
	f.values[key] = value
	return f.flush()
}

// load reads the backing file once; a missing file means an empty KV
func (f *FileKV) load() error {
	if f.loaded {
		return nil
	}

	f.values = make(map[string]string)
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			f.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}

	f.loaded = true
	return nil
}

func (f *FileKV) flush() error {
	dir := filepath.Dir(f.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(f.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
