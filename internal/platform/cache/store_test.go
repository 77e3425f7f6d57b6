package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetSet(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "k1", "v1")

	v, ok := store.Get(context.Background(), "k1")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got, _ := v.(string); got != "v1" {
		t.Fatalf("unexpected value: %v", v)
	}

	if _, ok := store.Get(context.Background(), "missing"); ok {
		t.Fatalf("expected cache miss")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	store.Set(context.Background(), "k1", true)
	time.Sleep(10 * time.Millisecond)

	if _, ok := store.Get(context.Background(), "k1"); !ok {
		t.Fatalf("expected entry to survive with zero ttl")
	}
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewStore(20 * time.Millisecond)
	store.Set(context.Background(), "k1", true)
	time.Sleep(40 * time.Millisecond)

	if _, ok := store.Get(context.Background(), "k1"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return true, nil
	}

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "slug", loader)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if live, _ := v.(bool); !live {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	wantErr := errors.New("upstream down")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, wantErr
		}
		return "recovered", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}

	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if got, _ := v.(string); got != "recovered" {
		t.Fatalf("unexpected value: %v", v)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "nfl:cowboys", true)
	store.Set(context.Background(), "nfl:eagles", true)
	store.Set(context.Background(), "nhl:bruins", true)

	store.DeletePrefix(context.Background(), "nfl:")

	if _, ok := store.Get(context.Background(), "nfl:cowboys"); ok {
		t.Fatalf("expected nfl entries gone")
	}
	if _, ok := store.Get(context.Background(), "nhl:bruins"); !ok {
		t.Fatalf("expected nhl entry kept")
	}
}
