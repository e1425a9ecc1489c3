package blob

import "context"

// Repository is the key-value blob store used as the pipeline cache.
type Repository interface {
	Exists(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (Object, bool, error)
	Put(ctx context.Context, object Object) error
}
