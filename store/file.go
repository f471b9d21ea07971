package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore implements Store over plain files rooted at a base directory.
// An empty base path makes names behave as ordinary relative or absolute
// file paths, which is what the CLI uses.
type FileStore struct {
	basepath string
}

// NewFileStore returns a FileStore that loads and saves blobs as files in
// the directory at the given path.
//
//	p := store.NewFileStore("/var/db/matrices")
//	b, err := p.Load(ctx, "input_a.txt")
func NewFileStore(path string) FileStore {
	return FileStore{basepath: path}
}

// Load loads the bytes persisted in the named file.
func (p FileStore) Load(_ context.Context, name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(p.basepath, name))
	if err != nil {
		return nil, fmt.Errorf("read %q: %v: %w", name, err, ErrStorage)
	}

	return b, nil
}

// Save persists the given bytes in a file of the given name, overwriting
// any previous content.
func (p FileStore) Save(_ context.Context, name string, b []byte) error {
	if err := os.WriteFile(filepath.Join(p.basepath, name), b, 0o644); err != nil {
		return fmt.Errorf("write %q: %v: %w", name, err, ErrStorage)
	}

	return nil
}
