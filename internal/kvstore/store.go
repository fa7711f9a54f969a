// Package kvstore defines the key-value persistence boundary used by the
// state stores, plus SQLite-backed and in-memory implementations.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
// Callers should match it with errors.Is.
var ErrNotFound = errors.New("key not found")

// Store is the durable key-value contract consumed by the session and
// preference stores. Each consumer owns a disjoint key namespace.
//
// Remove must succeed when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
