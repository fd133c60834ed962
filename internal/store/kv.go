// Package store is the durable local state gateway: whole-record JSON
// values under fixed keys, last-write-wins, with schema-default
// backfill on load. Redis backs it in production; the in-memory
// implementation serves tests.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get for absent keys. The gateway maps
// it to well-defined defaults rather than surfacing it.
var ErrNotFound = errors.New("key not found")

// KV is the minimal key/value contract the gateway persists through.
type KV interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, key string) error
}
