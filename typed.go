package waybill

import (
	"context"

	"github.com/aretw0/waybill/pkg/cache"
)

// EnsureTyped reads a cache entry with its concrete type, fetching it
// through the store when needed. It is the generic equivalent of
// Store.EnsureQueryData for callers that hold a Console.
func EnsureTyped[T any](ctx context.Context, c *Console, key string, fetch func(context.Context) (T, error)) (T, error) {
	return cache.EnsureTyped(ctx, c.Cache, key, fetch)
}
