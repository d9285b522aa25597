package middleware

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client), server
}

func TestRedisLimiterAllow(t *testing.T) {
	limiter, _ := newTestRedisLimiter(t)

	for i := 0; i < 2; i++ {
		if !limiter.Allow("login:1.2.3.4", 2, time.Minute) {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
	}
	if limiter.Allow("login:1.2.3.4", 2, time.Minute) {
		t.Fatal("expected third request to be blocked")
	}
	if !limiter.Allow("login:5.6.7.8", 2, time.Minute) {
		t.Fatal("expected different key to have its own window")
	}
}

func TestRedisLimiterWindowExpiry(t *testing.T) {
	limiter, server := newTestRedisLimiter(t)

	if !limiter.Allow("apply:key", 1, time.Second) {
		t.Fatal("expected first request to be allowed")
	}
	if limiter.Allow("apply:key", 1, time.Second) {
		t.Fatal("expected second request to be blocked")
	}
	server.FastForward(2 * time.Second)
	if !limiter.Allow("apply:key", 1, time.Second) {
		t.Fatal("expected request after window to be allowed")
	}
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	limiter, server := newTestRedisLimiter(t)
	server.Close()

	if !limiter.Allow("login:1.2.3.4", 1, time.Minute) {
		t.Fatal("expected limiter to fail open when redis is down")
	}
}

func TestRedisLimiterNilClient(t *testing.T) {
	if NewRedisLimiter(nil) != nil {
		t.Fatal("expected nil limiter for nil client")
	}
	var limiter *RedisLimiter
	if !limiter.Allow("key", 1, time.Minute) {
		t.Fatal("expected nil limiter to allow")
	}
}
