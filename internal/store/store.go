// Package store persists small JSON documents under string keys. It backs the
// calculation history and the saved form state.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a key-value store of JSON-encoded values.
type Store interface {
	// Save encodes value as JSON and stores it under key, replacing any
	// previous value.
	Save(ctx context.Context, key string, value any) error
	// Load decodes the value stored under key into dst. It reports false
	// with a nil error when the key is absent.
	Load(ctx context.Context, key string, dst any) (bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the store for backend. path is a directory for the file
// backend and a database file for sqlite; memory ignores it.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
