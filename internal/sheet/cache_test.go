package sheet

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheLoadsOnce(t *testing.T) {
	var loads atomic.Int32
	cache := NewCache(func(ctx context.Context) (int, error) {
		loads.Add(1)
		return 42, nil
	})

	for i := 0; i < 3; i++ {
		v, err := cache.EnsureLoaded(context.Background())
		if err != nil || v != 42 {
			t.Fatalf("EnsureLoaded = %d, %v", v, err)
		}
	}
	if got := loads.Load(); got != 1 {
		t.Errorf("expected 1 load, got %d", got)
	}
}

func TestCacheConcurrentCallersShareOneLoad(t *testing.T) {
	var loads atomic.Int32
	cache := NewCache(func(ctx context.Context) (string, error) {
		loads.Add(1)
		time.Sleep(10 * time.Millisecond) // hold the flight open
		return "dataset", nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.EnsureLoaded(context.Background())
			if err != nil || v != "dataset" {
				t.Errorf("EnsureLoaded = %q, %v", v, err)
			}
		}()
	}
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Errorf("expected exactly 1 load, got %d", got)
	}
}

func TestCacheFailureIsCached(t *testing.T) {
	var loads atomic.Int32
	boom := errors.New("boom")
	cache := NewCache(func(ctx context.Context) ([]string, error) {
		loads.Add(1)
		return nil, boom
	})

	if _, err := cache.EnsureLoaded(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := cache.EnsureLoaded(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected the cached failure, got %v", err)
	}
	if got := loads.Load(); got != 1 {
		t.Errorf("expected 1 load, got %d", got)
	}
}

func TestCacheReloadDuringInflightLoad(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var loads atomic.Int32
	cache := NewCache(func(ctx context.Context) (int, error) {
		n := int(loads.Add(1))
		if n == 1 {
			close(entered)
			<-release // hold the first flight open
		}
		return n, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = cache.EnsureLoaded(context.Background())
	}()
	<-entered

	// Reload must start a fresh fetch, not join the stuck flight.
	v, err := cache.Reload(context.Background())
	if err != nil || v != 2 {
		t.Fatalf("reload = %d, %v; want 2", v, err)
	}

	close(release)
	<-done

	// The superseded flight must not overwrite the reloaded value.
	v, err = cache.EnsureLoaded(context.Background())
	if err != nil || v != 2 {
		t.Errorf("expected the reloaded value to stick, got %d, %v", v, err)
	}
}

func TestCacheReload(t *testing.T) {
	var loads atomic.Int32
	cache := NewCache(func(ctx context.Context) (int, error) {
		return int(loads.Add(1)), nil
	})

	v, _ := cache.EnsureLoaded(context.Background())
	if v != 1 {
		t.Fatalf("first load = %d, want 1", v)
	}
	v, err := cache.Reload(context.Background())
	if err != nil || v != 2 {
		t.Fatalf("reload = %d, %v; want 2", v, err)
	}
	v, _ = cache.EnsureLoaded(context.Background())
	if v != 2 {
		t.Errorf("expected the reloaded value to stick, got %d", v)
	}
}
