package ratelimit

import (
	"testing"
	"time"
)

func TestLimiterBurstThenReject(t *testing.T) {
	l := New(Config{PerSecond: 0.001, Burst: 3, CleanupInterval: time.Minute})
	defer l.Stop()

	for i := range 3 {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d within burst was rejected", i)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request beyond burst was allowed")
	}

	allowed, rejected := l.Stats()
	if allowed != 3 || rejected != 1 {
		t.Errorf("stats = %d/%d, want 3/1", allowed, rejected)
	}
}

func TestLimiterKeysIndependent(t *testing.T) {
	l := New(Config{PerSecond: 0.001, Burst: 1, CleanupInterval: time.Minute})
	defer l.Stop()

	if !l.Allow("a") || !l.Allow("b") {
		t.Fatal("first request per key should pass")
	}
	if l.Allow("a") {
		t.Error("key a should be exhausted")
	}
	if l.Len() != 2 {
		t.Errorf("tracked keys = %d, want 2", l.Len())
	}
}

func TestLimiterCleanup(t *testing.T) {
	l := New(Config{PerSecond: 1, Burst: 1, CleanupInterval: time.Minute})
	defer l.Stop()

	l.Allow("stale")
	l.cleanup(time.Now())
	if l.Len() != 1 {
		t.Fatalf("fresh key removed")
	}

	l.cleanup(time.Now().Add(3 * time.Minute))
	if l.Len() != 0 {
		t.Errorf("stale key kept, %d tracked", l.Len())
	}
}

func TestLimiterStopTwice(t *testing.T) {
	l := New(DefaultConfig())
	l.Stop()
	l.Stop()
}
