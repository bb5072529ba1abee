// Package localstorage is a string-keyed blob store on top of the local
// SQLite database, playing the role browser localStorage plays for a web
// page: one key per persisted value, values replaced whole.
package localstorage

import "context"

// Repository is a persistent key/value map.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
	// Clear removes every key.
	Clear(ctx context.Context) error
}
