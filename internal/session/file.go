package session

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores each key as a file under a directory. Values are
// written with owner-only permissions since the cookie is a credential.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the directory if needed and returns the backend.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	// Keys are dotted logical names; keep them filesystem-safe.
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(b.dir, name)
}

// Set writes the value atomically via a temp file rename.
func (b *FileBackend) Set(_ context.Context, key string, value []byte) error {
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, b.path(key))
}

func (b *FileBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *FileBackend) Delete(_ context.Context, key string) error {
	err := os.Remove(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (b *FileBackend) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
