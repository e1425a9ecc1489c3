package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
)

// BlobRepository stores each blob as a file under root, keyed by its
// slash-separated path. Content type is derived from the key extension.
type BlobRepository struct {
	root string
}

func NewBlobRepository(root string) (*BlobRepository, error) {
	if root == "" {
		return nil, fmt.Errorf("blob root directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve blob root %q: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root %q: %w", abs, err)
	}
	return &BlobRepository{root: abs}, nil
}

func (r *BlobRepository) Exists(_ context.Context, key string) (bool, error) {
	name, err := r.path(key)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat blob %s: %w", key, err)
	}
	return !info.IsDir(), nil
}

func (r *BlobRepository) Get(_ context.Context, key string) (blob.Object, bool, error) {
	name, err := r.path(key)
	if err != nil {
		return blob.Object{}, false, err
	}
	body, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return blob.Object{}, false, nil
	}
	if err != nil {
		return blob.Object{}, false, fmt.Errorf("read blob %s: %w", key, err)
	}

	object := blob.Object{Key: key, ContentType: contentTypeOf(key), Body: body}
	if info, err := os.Stat(name); err == nil {
		object.UpdatedAt = info.ModTime().UTC()
	}
	return object, true, nil
}

// Put writes through a temporary file so readers never see a partial blob.
func (r *BlobRepository) Put(_ context.Context, object blob.Object) error {
	name, err := r.path(object.Key)
	if err != nil {
		return err
	}
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create blob dir for %s: %w", object.Key, err)
	}

	tmp, err := os.CreateTemp(dir, ".blob-*")
	if err != nil {
		return fmt.Errorf("create temp blob for %s: %w", object.Key, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(object.Body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write blob %s: %w", object.Key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close blob %s: %w", object.Key, err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("commit blob %s: %w", object.Key, err)
	}
	return nil
}

func (r *BlobRepository) path(key string) (string, error) {
	if !blob.ValidKey(key) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(r.root, filepath.FromSlash(key)), nil
}

func contentTypeOf(key string) string {
	switch path.Ext(key) {
	case ".json":
		return blob.ContentTypeJSON
	case ".jsonl":
		return blob.ContentTypeJSONL
	case ".md":
		return blob.ContentTypeMarkdown
	default:
		return blob.ContentTypeText
	}
}
