package cache

import (
	"context"
	"fmt"
)

// EnsureTyped is the generic counterpart of Store.EnsureQueryData. The
// store itself holds untyped values; this wrapper restores type safety
// at the call site, so loaders read and write concrete entities instead
// of asserting on any themselves.
func EnsureTyped[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	value, err := s.EnsureQueryData(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		// Two descriptors sharing one key with different types is a
		// programming error, not a runtime condition to recover from.
		return zero, fmt.Errorf("cache entry %q holds %T, want %T", key, value, zero)
	}
	return typed, nil
}
