package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
)

type BlobRepository struct {
	mu      sync.RWMutex
	objects map[string]blob.Object
	now     func() time.Time
}

func NewBlobRepository(objects ...blob.Object) *BlobRepository {
	repo := &BlobRepository{
		objects: make(map[string]blob.Object, len(objects)),
		now:     time.Now,
	}
	for _, object := range objects {
		repo.objects[object.Key] = cloneObject(object)
	}
	return repo
}

func (r *BlobRepository) Exists(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.objects[key]
	return ok, nil
}

func (r *BlobRepository) Get(_ context.Context, key string) (blob.Object, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	object, ok := r.objects[key]
	if !ok {
		return blob.Object{}, false, nil
	}
	return cloneObject(object), true, nil
}

func (r *BlobRepository) Put(_ context.Context, object blob.Object) error {
	if !blob.ValidKey(object.Key) {
		return fmt.Errorf("invalid blob key %q", object.Key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	object = cloneObject(object)
	object.UpdatedAt = r.now().UTC()
	r.objects[object.Key] = object
	return nil
}

// Keys lists stored keys with the given prefix in lexical order.
func (r *BlobRepository) Keys(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.objects))
	for key := range r.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func cloneObject(object blob.Object) blob.Object {
	object.Body = append([]byte(nil), object.Body...)
	return object
}
