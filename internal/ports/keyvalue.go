package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the slot is absent.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is a named-slot byte store. Two implementations back the
// persistence gateway: a local durable store (sqlite) and a best-effort
// synced store (HTTP).
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
