package repositories

import "context"

// KVStore is the persistence port: a durable key-value store holding one
// serialized collection per key. Implementations must treat Save as a
// wholesale replacement of the value under key.
//
// A missing key is not an error; Load reports it via the found flag.
type KVStore interface {
	// Load returns the raw value stored under key, if any.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)

	// Save durably replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
}
