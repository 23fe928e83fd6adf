// Package storage provides the key-value persistence used for client state
// (cart and shop session records). Implementations only move bytes; record
// versioning and migration belong to the stores that own the records.
package storage

import "context"

// Store is a minimal durable key-value store.
type Store interface {
	// Load returns the stored bytes for key. The second result is false when
	// the key has never been saved; that is not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
