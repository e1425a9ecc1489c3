package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
)

const DefaultBucket = "nhl-commentary-bucket"

// NewClient uses the credentials file when it exists and falls back to
// application default credentials otherwise.
func NewClient(ctx context.Context, credentialsFile string) (*storage.Client, error) {
	var opts []option.ClientOption
	if path := strings.TrimSpace(credentialsFile); path != "" {
		if _, err := os.Stat(path); err == nil {
			opts = append(opts, option.WithCredentialsFile(path))
		}
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return client, nil
}

type BlobRepository struct {
	bucket *storage.BucketHandle
	name   string
}

func NewBlobRepository(client *storage.Client, bucket string) *BlobRepository {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		bucket = DefaultBucket
	}
	return &BlobRepository{bucket: client.Bucket(bucket), name: bucket}
}

func (r *BlobRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.bucket.Object(key).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat gs://%s/%s: %w", r.name, key, err)
	}
	return true, nil
}

func (r *BlobRepository) Get(ctx context.Context, key string) (blob.Object, bool, error) {
	reader, err := r.bucket.Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return blob.Object{}, false, nil
	}
	if err != nil {
		return blob.Object{}, false, fmt.Errorf("open gs://%s/%s: %w", r.name, key, err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return blob.Object{}, false, fmt.Errorf("read gs://%s/%s: %w", r.name, key, err)
	}
	return blob.Object{
		Key:         key,
		ContentType: reader.Attrs.ContentType,
		Body:        body,
		UpdatedAt:   reader.Attrs.LastModified.UTC(),
	}, true, nil
}

func (r *BlobRepository) Put(ctx context.Context, object blob.Object) error {
	if !blob.ValidKey(object.Key) {
		return fmt.Errorf("invalid blob key %q", object.Key)
	}

	writer := r.bucket.Object(object.Key).NewWriter(ctx)
	writer.ContentType = object.ContentType
	if _, err := writer.Write(object.Body); err != nil {
		_ = writer.Close()
		return fmt.Errorf("write gs://%s/%s: %w", r.name, object.Key, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("commit gs://%s/%s: %w", r.name, object.Key, err)
	}
	return nil
}
