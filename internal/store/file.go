package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps each collection in <dir>/<kind>.json.
type FileBackend struct {
	Dir string
}

// OpenFileBackend creates dir if needed and initialises any missing collection file to an empty array.
func OpenFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("data directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	b := &FileBackend{Dir: dir}
	for _, kind := range Kinds() {
		path := b.path(kind)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init %s: %w", path, err)
			}
		}
	}
	return b, nil
}

func (b *FileBackend) path(kind string) string {
	return filepath.Join(b.Dir, kind+".json")
}

// Load reads <dir>/<kind>.json. A missing file is not an error.
func (b *FileBackend) Load(ctx context.Context, kind string) ([]byte, error) {
	data, err := os.ReadFile(b.path(kind))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save writes data to a temp file next to the collection and renames it into place.
func (b *FileBackend) Save(ctx context.Context, kind string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.Dir, kind+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, b.path(kind))
}

// Close is a no-op; files are not held open between calls.
func (b *FileBackend) Close() error { return nil }
