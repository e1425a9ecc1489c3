package cache

import (
	"context"
	"time"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	basecache "github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/cache"
)

// BlobRepository keeps recently read blobs in process memory in front of
// a slower store. Writes go through to next before updating the cache.
type BlobRepository struct {
	next  blob.Repository
	cache *basecache.Store[cachedBlob]
}

type cachedBlob struct {
	value  blob.Object
	exists bool
}

// NewBlobRepository caches reads for ttl, including misses; zero keeps
// entries until overwritten.
func NewBlobRepository(next blob.Repository, ttl time.Duration) *BlobRepository {
	return &BlobRepository{next: next, cache: basecache.NewStore[cachedBlob](ttl)}
}

func (r *BlobRepository) Exists(ctx context.Context, key string) (bool, error) {
	if cached, ok := r.cache.Get(blobCacheKey(key)); ok {
		return cached.exists, nil
	}
	return r.next.Exists(ctx, key)
}

func (r *BlobRepository) Get(ctx context.Context, key string) (blob.Object, bool, error) {
	cached, err := r.cache.GetOrLoad(ctx, blobCacheKey(key), func(ctx context.Context) (cachedBlob, error) {
		object, exists, err := r.next.Get(ctx, key)
		if err != nil {
			return cachedBlob{}, err
		}
		return cachedBlob{value: cloneObject(object), exists: exists}, nil
	})
	if err != nil {
		return blob.Object{}, false, err
	}
	if !cached.exists {
		return blob.Object{}, false, nil
	}
	return cloneObject(cached.value), true, nil
}

func (r *BlobRepository) Put(ctx context.Context, object blob.Object) error {
	if err := r.next.Put(ctx, object); err != nil {
		r.cache.Delete(blobCacheKey(object.Key))
		return err
	}
	r.cache.Set(blobCacheKey(object.Key), cachedBlob{value: cloneObject(object), exists: true})
	return nil
}

func blobCacheKey(key string) string {
	return "blob:" + key
}

func cloneObject(object blob.Object) blob.Object {
	object.Body = append([]byte(nil), object.Body...)
	return object
}
