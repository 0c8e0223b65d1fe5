// File: storage/backend.go
package storage

import "errors"

// ErrNotFound is returned by a backend when no value is stored under a key.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a single key-value storage tier. Backends are ranked: callers
// go through Tiered, which tries each backend in order and treats every
// individual failure as recoverable.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Name() string
}
