package trending

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type stubFetcher struct {
	queries []string
	err     error
	calls   int
}

func (s *stubFetcher) TopQueries(context.Context, int) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.queries, nil
}

func TestRefreshAndBlend(t *testing.T) {
	f := &stubFetcher{queries: []string{"What is a quasar?", "what is gravity?", "How do magnets work?"}}
	c := New(f, Config{}, nil)
	c.refresh(context.Background())

	base := []string{"What is gravity?"}
	got := c.Blend(base)
	want := []string{"What is gravity?", "What is a quasar?", "How do magnets work?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Blend = %v, want %v", got, want)
	}
	if len(base) != 1 {
		t.Errorf("Blend mutated base: %v", base)
	}
}

func TestBlendCapsAtTwo(t *testing.T) {
	f := &stubFetcher{queries: []string{"a?", "b?", "c?", "d?"}}
	c := New(f, Config{}, nil)
	c.refresh(context.Background())

	got := c.Blend([]string{"x?"})
	if len(got) != 3 {
		t.Fatalf("Blend added %d trending entries, want 2: %v", len(got)-1, got)
	}
	if got[1] != "a?" || got[2] != "b?" {
		t.Errorf("Blend = %v, want trending in ranking order", got)
	}
}

func TestBlendWithoutSnapshot(t *testing.T) {
	base := []string{"What is gravity?"}

	var nilClient *Client
	if got := nilClient.Blend(base); !reflect.DeepEqual(got, base) {
		t.Errorf("nil client Blend = %v, want base untouched", got)
	}

	c := New(&stubFetcher{}, Config{}, nil)
	if got := c.Blend(base); !reflect.DeepEqual(got, base) {
		t.Errorf("empty snapshot Blend = %v, want base untouched", got)
	}
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	f := &stubFetcher{queries: []string{"What is a quasar?"}}
	c := New(f, Config{Interval: time.Minute}, nil)
	c.refresh(context.Background())
	if got := c.Current(); len(got) != 1 {
		t.Fatalf("Current = %v, want one entry", got)
	}

	f.err = errors.New("analytics down")
	for i := 0; i < 5; i++ {
		c.refresh(context.Background())
	}
	if got := c.Current(); len(got) != 1 || got[0] != "What is a quasar?" {
		t.Errorf("Current after failures = %v, want previous snapshot", got)
	}
	// Three consecutive failures trip the breaker; later refreshes are
	// rejected without reaching the fetcher.
	if f.calls != 4 {
		t.Errorf("fetcher calls = %d, want 4 (1 ok + 3 failures)", f.calls)
	}
}
