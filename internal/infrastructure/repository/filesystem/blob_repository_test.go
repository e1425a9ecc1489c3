package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
)

func TestBlobRepository_PutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	repo, err := NewBlobRepository(root)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	key := blob.EventsKey(2024021180)
	if ok, err := repo.Exists(ctx, key); err != nil || ok {
		t.Fatalf("expected missing blob, ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected get miss, ok=%v err=%v", ok, err)
	}

	if err := repo.Put(ctx, blob.Object{Key: key, Body: []byte("{\"event_type\":\"goal\"}\n")}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "derived", "events", "2024021180.jsonl")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	got, ok, err := repo.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got.Body) != "{\"event_type\":\"goal\"}\n" {
		t.Fatalf("unexpected body: %q", got.Body)
	}
	if got.ContentType != blob.ContentTypeJSONL {
		t.Fatalf("unexpected content type: %s", got.ContentType)
	}
	if ok, err := repo.Exists(ctx, key); err != nil || !ok {
		t.Fatalf("expected blob to exist, ok=%v err=%v", ok, err)
	}
}

func TestBlobRepository_RejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	repo, err := NewBlobRepository(t.TempDir())
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	for _, key := range []string{"", "/etc/passwd", "../outside.json", "raw/../../x"} {
		if err := repo.Put(context.Background(), blob.Object{Key: key, Body: []byte("x")}); err == nil {
			t.Fatalf("expected key %q to be rejected", key)
		}
	}
}
