package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
)

func newRedisForTest(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedis(RedisConfig{Addr: mr.Addr()}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	return c, mr
}

func TestRedisSetGet(t *testing.T) {
	c, _ := newRedisForTest(t)
	ctx := context.Background()

	c.Set(ctx, "k", []byte(`{"song":"x"}`), time.Minute)
	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != `{"song":"x"}` {
		t.Fatalf("Get = (%q, %v), want hit", got, ok)
	}

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestRedisExpiry(t *testing.T) {
	c, mr := newRedisForTest(t)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Second)
	mr.FastForward(2 * time.Second)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestRedisDeleteAndStats(t *testing.T) {
	c, _ := newRedisForTest(t)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	c.Delete(ctx, "k")
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss after delete")
	}

	stats := c.Stats()
	if stats.Sets != 1 || stats.Misses != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRedisUnreachable(t *testing.T) {
	if _, err := NewRedis(RedisConfig{Addr: "127.0.0.1:1"}, zerolog.Nop()); err == nil {
		t.Fatal("expected connection error")
	}
}
