// Package metadata is the durable client-side key-value store backing the
// session: the bearer token and the serialized user live here between runs.
package metadata

import "context"

// Repository stores opaque values by key. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
