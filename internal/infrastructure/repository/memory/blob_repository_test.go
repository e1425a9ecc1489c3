package memory

import (
	"context"
	"testing"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
)

func TestBlobRepository_CopiesBodies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewBlobRepository()
	body := []byte("Game Summary:")
	if err := repo.Put(ctx, blob.Object{Key: blob.StatsSummaryKey(1), ContentType: blob.ContentTypeText, Body: body}); err != nil {
		t.Fatalf("put: %v", err)
	}
	body[0] = 'X'

	got, ok, err := repo.Get(ctx, blob.StatsSummaryKey(1))
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got.Body) != "Game Summary:" {
		t.Fatalf("stored body aliased caller slice: %q", got.Body)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatalf("expected updated at to be set")
	}
	if keys := repo.Keys("derived/"); len(keys) != 1 {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestBlobRepository_InvalidKey(t *testing.T) {
	t.Parallel()

	if err := NewBlobRepository().Put(context.Background(), blob.Object{Key: "../x"}); err == nil {
		t.Fatalf("expected invalid key error")
	}
}
