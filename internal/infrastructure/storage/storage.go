package storage

import (
	"fmt"

	"github.com/nooros/backend/internal/domain/persistence"
)

// Backend names
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Backend is a persistence.Store that holds resources
type Backend interface {
	persistence.Store
	Close() error
}

// Open creates the named backend rooted at path
func Open(backend, path string) (Backend, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendFile:
		return NewFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
