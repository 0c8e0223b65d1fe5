// File: storage/file.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores values as plain files under dir. This is the general
// storage tier: profile blobs live here, and it is the last resort for
// tokens when neither secure tier works.
type FileBackend struct {
	Dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{Dir: dir}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.Dir, key)
}

func (b *FileBackend) Get(key string) (string, error) {
	raw, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(raw), nil
}

func (b *FileBackend) Set(key, value string) error {
	if err := os.MkdirAll(b.Dir, 0o700); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	return os.WriteFile(b.path(key), []byte(value), 0o600)
}

func (b *FileBackend) Delete(key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (b *FileBackend) Name() string { return "file" }
