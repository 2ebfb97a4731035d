package common

import (
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	cs := NewMemoryCache()

	if _, found := cs.Get("missing"); found {
		t.Error("Get on empty cache reported a hit")
	}

	cs.Set("key", 42, time.Minute)
	val, found := cs.Get("key")
	if !found || val.(int) != 42 {
		t.Errorf("Get = %v, %v, want 42, true", val, found)
	}

	cs.Delete("key")
	if _, found := cs.Get("key"); found {
		t.Error("Get after Delete reported a hit")
	}
}

func TestMemoryCacheGetOrSet(t *testing.T) {
	cs := NewMemoryCache()
	calls := 0
	loader := func() (any, error) {
		calls++
		return "loaded", nil
	}

	for i := 0; i < 2; i++ {
		val, err := cs.GetOrSet("key", time.Minute, loader)
		if err != nil {
			t.Fatalf("GetOrSet %d: %v", i, err)
		}
		if val.(string) != "loaded" {
			t.Errorf("GetOrSet %d = %v, want loaded", i, val)
		}
	}
	if calls != 1 {
		t.Errorf("loader calls = %d, want 1", calls)
	}
}

func TestMemoryCacheGetOrSetLoaderError(t *testing.T) {
	cs := NewMemoryCache()
	wantErr := errors.New("load failed")

	if _, err := cs.GetOrSet("key", time.Minute, func() (any, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	// A failed load must not poison the key.
	if _, found := cs.Get("key"); found {
		t.Error("failed load left a cache entry behind")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	cs := NewMemoryCache()
	cs.Set("key", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, found := cs.Get("key"); found {
		t.Error("expired entry still served")
	}
}
