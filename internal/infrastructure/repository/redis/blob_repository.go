package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
)

const (
	defaultKeyPrefix = "nhl:blob:"

	fieldBody        = "body"
	fieldContentType = "content_type"
	fieldUpdatedAt   = "updated_at"
)

// BlobRepository stores each blob as a hash of body, content type and
// update time. A positive ttl expires blobs after the last write.
type BlobRepository struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewBlobRepository(client *goredis.Client, prefix string, ttl time.Duration) *BlobRepository {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &BlobRepository{client: client, prefix: prefix, ttl: ttl, now: time.Now}
}

func (r *BlobRepository) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, r.redisKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("check blob %s exists: %w", key, err)
	}
	return count > 0, nil
}

func (r *BlobRepository) Get(ctx context.Context, key string) (blob.Object, bool, error) {
	fields, err := r.client.HGetAll(ctx, r.redisKey(key)).Result()
	if err != nil {
		return blob.Object{}, false, fmt.Errorf("read blob %s: %w", key, err)
	}
	body, ok := fields[fieldBody]
	if !ok {
		return blob.Object{}, false, nil
	}

	object := blob.Object{
		Key:         key,
		ContentType: fields[fieldContentType],
		Body:        []byte(body),
	}
	if updatedAt, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt]); err == nil {
		object.UpdatedAt = updatedAt
	}
	return object, true, nil
}

func (r *BlobRepository) Put(ctx context.Context, object blob.Object) error {
	if !blob.ValidKey(object.Key) {
		return fmt.Errorf("invalid blob key %q", object.Key)
	}

	key := r.redisKey(object.Key)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		fieldBody, object.Body,
		fieldContentType, object.ContentType,
		fieldUpdatedAt, r.now().UTC().Format(time.RFC3339Nano),
	)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write blob %s: %w", object.Key, err)
	}
	return nil
}

func (r *BlobRepository) redisKey(key string) string {
	return r.prefix + key
}
