package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/1Percent-hub/ScholarHub/internal/engine"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
	"github.com/1Percent-hub/ScholarHub/pkg/config"
)

func TestBuildKey(t *testing.T) {
	c := New(nil, config.RedisConfig{}, knowledge.Load(), nil)

	key := c.buildKey("What is a black hole?")
	if !strings.HasPrefix(key, keyPrefix) {
		t.Errorf("key %q missing prefix %q", key, keyPrefix)
	}
	if len(key) != len(keyPrefix)+32 {
		t.Errorf("key length = %d, want %d", len(key), len(keyPrefix)+32)
	}

	// Surface-form differences that normalize away share one key.
	same := []string{
		"what is a black hole",
		"  What IS a black hole?!  ",
		"what's a black hole",
	}
	for _, q := range same[1:] {
		if got := c.buildKey(q); got != c.buildKey(same[0]) {
			t.Errorf("buildKey(%q) = %q, want the key of %q", q, got, same[0])
		}
	}

	if c.buildKey("what is a black hole") == c.buildKey("what is a red hole") {
		t.Errorf("distinct queries share a key")
	}
}

func TestIndexCoversKnowledge(t *testing.T) {
	entries := knowledge.Load()
	c := New(nil, config.RedisConfig{}, entries, nil)
	if len(c.index) != len(entries) {
		t.Fatalf("index size = %d, want %d", len(c.index), len(entries))
	}
	for i, e := range entries {
		if got := c.index[e]; got != i {
			t.Errorf("index[entries[%d]] = %d, want %d", i, got, i)
		}
	}
}

func TestGetOrComputeBypass(t *testing.T) {
	entries := knowledge.Load()
	c := New(nil, config.RedisConfig{}, entries, nil)
	eng := engine.New(entries)

	calls := 0
	compute := func() (engine.Match, bool) {
		calls++
		return eng.Match("what is a black hole")
	}

	for i := 0; i < 3; i++ {
		m, ok, status := c.GetOrCompute(context.Background(), "what is a black hole", compute)
		if !ok {
			t.Fatalf("GetOrCompute reported no match")
		}
		if m.Entry == nil || m.Score <= 0 {
			t.Fatalf("GetOrCompute match = %+v", m)
		}
		if status != StatusBypass {
			t.Errorf("status = %q, want %q without a Redis client", status, StatusBypass)
		}
	}
	if calls != 3 {
		t.Errorf("compute ran %d times, want 3 (no caching without Redis)", calls)
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("Stats() = %d/%d, want 0/0 in bypass mode", hits, misses)
	}
}

func TestCachedMatchResolution(t *testing.T) {
	entries := knowledge.Load()
	c := New(nil, config.RedisConfig{}, entries, nil)
	eng := engine.New(entries)

	m, ok := eng.Match("what is a black hole")
	if !ok {
		t.Fatalf("no match for seed query")
	}
	idx, found := c.index[m.Entry]
	if !found {
		t.Fatalf("winning entry missing from index")
	}
	if c.entries[idx] != m.Entry {
		t.Errorf("entries[%d] does not round-trip the winning entry", idx)
	}
}
