package storage

import "context"

// ContentStore is durable byte storage keyed by the vault's storage-key
// scheme. Delete is idempotent: removing a key that holds no bytes is not
// an error. Implementations do not retry; a failed operation surfaces
// immediately to the caller.
type ContentStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
