package store

import (
	"context"
	"errors"
)

// ErrStorage indicates that the underlying persistence medium could not be
// read or written. The wrapped message carries the backend detail; match
// with errors.Is.
var ErrStorage = errors.New("store: storage access failed")

// Store loads and saves named blobs. Implementations must be safe for use
// from a single goroutine at a time; Save overwrites any existing blob of
// the same name.
type Store interface {
	// Load returns the bytes persisted under name.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save persists b under name, replacing any previous content.
	Save(ctx context.Context, name string, b []byte) error
}
