// Package storage provides the key-value store the blog data layer persists
// into. Each key holds one JSON-encoded collection which is read and written
// whole, mirroring how the browser front-end this replaces used localStorage:
// there is no partial-write path and no cross-writer coordination, so the last
// write wins at key granularity.
package storage

import "context"

// Store is a named-key blob store. Missing keys are reported via the boolean
// return, not an error.
type Store interface {
	// Get returns the value stored under key, and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases any resources held by the store.
	Close() error
}
