package transport

import (
	"testing"
	"time"
)

func TestIPRateLimiter(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewIPRateLimiter(1, 2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatalf("burst of two should pass")
	}
	if rl.Allow("a") {
		t.Fatalf("third request inside the same instant must be rejected")
	}
	if !rl.Allow("b") {
		t.Fatalf("buckets are per ip")
	}

	now = now.Add(2 * time.Minute)
	rl.Allow("b")
	rl.mu.Lock()
	_, kept := rl.visitors["a"]
	rl.mu.Unlock()
	if kept {
		t.Fatalf("idle visitor should have been swept")
	}

	if !NewIPRateLimiter(0, 0, 0).Allow("x") {
		t.Fatalf("zero limit disables limiting")
	}
}
