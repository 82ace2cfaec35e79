package service

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisChatRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisChatRateLimiter(client, time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("user-1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("user-1") {
		t.Fatal("request over the limit should be rejected")
	}

	// Otro usuario tiene su propia ventana.
	if !limiter.Allow("user-2") {
		t.Fatal("different key must not share the window")
	}

	// Pasada la ventana, el contador arranca de nuevo.
	mr.FastForward(2 * time.Minute)
	if !limiter.Allow("user-1") {
		t.Fatal("expected allowance after window expiry")
	}
}

func TestRedisChatRateLimiterNormalizesKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisChatRateLimiter(client, time.Minute, 1)

	if !limiter.Allow("  User-1 ") {
		t.Fatal("first request should pass")
	}
	if limiter.Allow("user-1") {
		t.Fatal("normalized keys must share the counter")
	}

	if limiter.Allow("   ") {
		t.Fatal("empty key must be rejected")
	}
}

func TestRedisChatRateLimiterFailOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisChatRateLimiter(client, time.Minute, 1)

	mr.Close()
	if !limiter.Allow("user-1") {
		t.Fatal("limiter must fail open when redis is unreachable")
	}
}

func TestRedisChatRateLimiterNilClient(t *testing.T) {
	if limiter := NewRedisChatRateLimiter(nil, time.Minute, 1); limiter != nil {
		t.Fatal("expected nil limiter for nil client")
	}
}
