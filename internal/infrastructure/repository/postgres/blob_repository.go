package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
)

const (
	existsBlobQuery = `SELECT EXISTS (SELECT 1 FROM blobs WHERE key = $1)`
	selectBlobQuery = `SELECT key, content_type, body, updated_at FROM blobs WHERE key = $1`
	upsertBlobQuery = `INSERT INTO blobs (key, content_type, body, updated_at)
VALUES (:key, :content_type, :body, NOW())
ON CONFLICT (key) DO UPDATE SET
    content_type = EXCLUDED.content_type,
    body = EXCLUDED.body,
    updated_at = NOW()`
)

type BlobRepository struct {
	db *sqlx.DB
}

func NewBlobRepository(db *sqlx.DB) *BlobRepository {
	return &BlobRepository{db: db}
}

func (r *BlobRepository) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, existsBlobQuery, key); err != nil {
		return false, fmt.Errorf("check blob %s exists: %w", key, err)
	}
	return exists, nil
}

func (r *BlobRepository) Get(ctx context.Context, key string) (blob.Object, bool, error) {
	var row blobTableModel
	if err := r.db.GetContext(ctx, &row, selectBlobQuery, key); err != nil {
		if isNotFound(err) {
			return blob.Object{}, false, nil
		}
		return blob.Object{}, false, fmt.Errorf("select blob %s: %w", key, err)
	}

	return blob.Object{
		Key:         row.Key,
		ContentType: row.ContentType,
		Body:        row.Body,
		UpdatedAt:   row.UpdatedAt.UTC(),
	}, true, nil
}

func (r *BlobRepository) Put(ctx context.Context, object blob.Object) error {
	if !blob.ValidKey(object.Key) {
		return fmt.Errorf("invalid blob key %q", object.Key)
	}

	insertModel := blobTableModel{
		Key:         object.Key,
		ContentType: object.ContentType,
		Body:        object.Body,
	}
	if insertModel.Body == nil {
		insertModel.Body = []byte{}
	}
	if _, err := r.db.NamedExecContext(ctx, upsertBlobQuery, insertModel); err != nil {
		return fmt.Errorf("upsert blob %s: %w", object.Key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
