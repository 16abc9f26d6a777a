package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestExactLimitPerWindow(t *testing.T) {
	l := New(3, time.Minute)
	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("c1")
		if !ok {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}
	ok, retry := l.Allow("c1")
	if ok {
		t.Fatalf("4th call should be denied")
	}
	if retry <= 0 || retry > time.Minute {
		t.Fatalf("unexpected retry-after: %v", retry)
	}
}

func TestWindowRollover(t *testing.T) {
	l := New(2, 40*time.Millisecond)
	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow("c1"); !ok {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}
	if ok, _ := l.Allow("c1"); ok {
		t.Fatalf("over-limit call should be denied")
	}
	time.Sleep(60 * time.Millisecond)
	if ok, _ := l.Allow("c1"); !ok {
		t.Fatalf("call after rollover should be allowed")
	}
}

func TestCallersIndependent(t *testing.T) {
	l := New(1, time.Minute)
	if ok, _ := l.Allow("a"); !ok {
		t.Fatalf("first caller should be allowed")
	}
	if ok, _ := l.Allow("b"); !ok {
		t.Fatalf("second caller should not share the first caller's window")
	}
	if ok, _ := l.Allow("a"); ok {
		t.Fatalf("first caller should be over limit")
	}
}

func TestConcurrentAllow(t *testing.T) {
	l := New(50, time.Minute)
	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("c1"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	if allowed.Load() != 50 {
		t.Fatalf("expected exactly 50 allowed, got %d", allowed.Load())
	}
}

func TestCleanup(t *testing.T) {
	l := New(1, time.Minute, WithIdleTTL(10*time.Millisecond))
	l.Allow("a")
	l.Allow("b")
	time.Sleep(20 * time.Millisecond)
	l.Cleanup()
	if _, _, callers := l.Stats(); callers != 0 {
		t.Fatalf("expected idle callers dropped, got %d", callers)
	}
}
