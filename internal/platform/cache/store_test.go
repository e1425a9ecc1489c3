package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore[[]byte](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]byte, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []byte("raw/pbp"), nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "raw/pbp/2024021180.json", loader)
			if err != nil {
				errCh <- err
				return
			}
			if string(v) != "raw/pbp" {
				errCh <- errors.New("unexpected value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	calls := 0
	loader := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("upstream down")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatalf("expected first load to fail")
	}
	got, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil || got != "ok" {
		t.Fatalf("unexpected second load: got=%q err=%v", got, err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil || calls != 2 {
		t.Fatalf("expected cached value, calls=%d err=%v", calls, err)
	}
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Second)
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set("a", 1)
	if v, ok := store.Get("a"); !ok || v != 1 {
		t.Fatalf("expected fresh entry, got=%d ok=%v", v, ok)
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get("a"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expired entry not evicted")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	store.Set("raw/pbp/1.json", "a")
	store.Set("raw/pbp/2.json", "b")
	store.Set("raw/story/1.json", "c")

	store.DeletePrefix("raw/pbp/")
	if _, ok := store.Get("raw/pbp/1.json"); ok {
		t.Fatalf("expected prefix delete")
	}
	if _, ok := store.Get("raw/story/1.json"); !ok {
		t.Fatalf("unrelated key removed")
	}
}
