// Package metadata implements a small durable key-value store used for
// client-side state such as the auth token and the cached user record.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the stored value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
