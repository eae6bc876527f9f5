package ratelimit

import (
	"testing"
	"time"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := New(time.Hour)
	defer l.Close()

	for i := 0; i < 3; i++ {
		if !l.Allow("client-a", 3) {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	if l.Allow("client-a", 3) {
		t.Error("request past the limit allowed, want denied")
	}
	if !l.Allow("client-b", 3) {
		t.Error("fresh key denied; buckets must be independent")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New(time.Hour)
	defer l.Close()

	if !l.Allow("client", 2) || !l.Allow("client", 2) {
		t.Fatal("initial requests denied")
	}
	if l.Allow("client", 2) {
		t.Fatal("bucket should be drained")
	}

	// Backdate the bucket a full window; the next check refills it.
	l.mu.Lock()
	l.entries["client"].lastCheck = time.Now().Add(-time.Hour)
	l.mu.Unlock()

	if !l.Allow("client", 2) {
		t.Error("bucket did not refill after a full window")
	}
}

func TestReset(t *testing.T) {
	l := New(time.Hour)
	defer l.Close()

	l.Allow("client", 1)
	if l.Allow("client", 1) {
		t.Fatal("bucket should be drained")
	}
	l.Reset("client")
	if !l.Allow("client", 1) {
		t.Error("Reset did not restore capacity")
	}
}

func TestSweepDropsStaleBuckets(t *testing.T) {
	l := New(time.Minute)
	defer l.Close()

	l.Allow("old", 5)
	l.Allow("fresh", 5)
	l.mu.Lock()
	l.entries["old"].lastCheck = time.Now().Add(-time.Hour)
	l.mu.Unlock()

	l.sweep(time.Now().Add(-2 * time.Minute))

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries["old"]; ok {
		t.Error("stale bucket survived the sweep")
	}
	if _, ok := l.entries["fresh"]; !ok {
		t.Error("fresh bucket was swept")
	}
}
