package infra

import (
	"context"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache should miss")
	}

	c.Set("k", 42)
	v, ok := c.Get("k")
	if !ok || v.(int) != 42 {
		t.Errorf("Get(k): got %v, ok=%v", v, ok)
	}

	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Error("invalidated key should miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(time.Minute)
	c.SetWithTTL("short", "v", 10*time.Millisecond)

	time.Sleep(25 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("expired entry should miss")
	}

	c.Cleanup()
}

func TestCacheFlush(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()
	if _, ok := c.Get("a"); ok {
		t.Error("flushed cache should miss")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	ctx := context.Background()

	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("first token: %v", err)
	}
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("second token: %v", err)
	}

	// Bucket empty, no refill for an hour — Wait must block until the
	// context deadline.
	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if err := rl.Wait(ctx); err == nil {
		t.Fatal("expected context deadline with empty bucket")
	}
}

func TestDailyCounter(t *testing.T) {
	d := NewDailyCounter(2)

	if d.Remaining() != 2 {
		t.Errorf("fresh counter remaining: got %d, want 2", d.Remaining())
	}
	if !d.Take() || !d.Take() {
		t.Fatal("first two takes should succeed")
	}
	if d.Take() {
		t.Error("third take should fail at limit 2")
	}
	if d.Remaining() != 0 {
		t.Errorf("exhausted counter remaining: got %d, want 0", d.Remaining())
	}
}

func TestDailyCounterUnlimited(t *testing.T) {
	d := NewDailyCounter(0)
	for i := 0; i < 100; i++ {
		if !d.Take() {
			t.Fatal("unlimited counter refused a take")
		}
	}
	if d.Remaining() != -1 {
		t.Errorf("unlimited remaining: got %d, want -1", d.Remaining())
	}
}
