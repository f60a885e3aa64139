package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Slot is the durable local store for the signed-in identity. An absent
// value means signed out.
type Slot interface {
	Load() (*Identity, error)
	Save(identity Identity) error
	Clear() error
}

// FileSlot keeps the identity as a JSON file on disk.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (f *FileSlot) Load() (*Identity, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (f *FileSlot) Save(identity Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileSlot) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemorySlot holds the identity in memory only. Useful in tests and in
// environments without a writable disk.
type MemorySlot struct {
	mu       sync.Mutex
	identity *Identity
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (m *MemorySlot) Load() (*Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return nil, nil
	}
	identity := *m.identity
	return &identity, nil
}

func (m *MemorySlot) Save(identity Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = &identity
	return nil
}

func (m *MemorySlot) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = nil
	return nil
}
