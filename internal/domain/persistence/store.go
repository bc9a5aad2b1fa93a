package persistence

import (
	"context"
	"errors"
)

// Slot keys
const (
	WindowsKey = "nooros_windows_v2"
	IconsKey   = "nooros_icons_v2"
)

// ErrNotFound is returned by Store.Get for a missing key
var ErrNotFound = errors.New("persistence: key not found")

// Store is a byte-oriented key-value backend
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
