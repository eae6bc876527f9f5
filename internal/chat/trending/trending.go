// Package trending surfaces the questions users are asking right now. A
// background loop pulls top queries from the analytics service over RPC
// and the chat handler blends a couple of them into its suggestion lists.
// Analytics being down never breaks chat: the last snapshot keeps serving
// and Blend degrades to the static list.
package trending

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/grpc"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	"github.com/1Percent-hub/ScholarHub/pkg/proto"
	"github.com/1Percent-hub/ScholarHub/pkg/resilience"
)

const (
	defaultInterval = 30 * time.Second
	defaultLimit    = 5

	// maxBlended caps how many trending questions join one suggestion list.
	maxBlended = 2
)

// Fetcher pulls one batch of trending questions.
type Fetcher interface {
	TopQueries(ctx context.Context, limit int) ([]string, error)
}

// RPCFetcher returns a Fetcher that dials the analytics RPC service for
// every refresh. Dialing per refresh keeps reconnection trivial: an
// analytics restart is picked up on the next tick.
func RPCFetcher(addr string) Fetcher { return rpcFetcher{addr: addr} }

type rpcFetcher struct{ addr string }

func (f rpcFetcher) TopQueries(_ context.Context, limit int) ([]string, error) {
	client, err := grpc.Dial(f.addr)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var resp proto.TopQueriesResponse
	if err := client.Call("Analytics.TopQueries", &proto.TopQueriesRequest{Limit: int32(limit)}, &resp); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Queries))
	for _, q := range resp.Queries {
		if q.Query != "" {
			out = append(out, q.Query)
		}
	}
	return out, nil
}

// Config controls the refresh loop.
type Config struct {
	Interval time.Duration
	Limit    int
}

// Client keeps the latest trending questions in memory behind a circuit
// breaker. All methods are safe on a nil *Client, so chat can run with
// trending disabled.
type Client struct {
	fetcher  Fetcher
	interval time.Duration
	limit    int
	breaker  *resilience.CircuitBreaker
	metrics  *metrics.Metrics
	logger   *slog.Logger
	current  atomic.Value // []string
}

// New builds a trending client over a Fetcher. Zero config fields get
// defaults.
func New(fetcher Fetcher, cfg Config, met *metrics.Metrics) *Client {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}
	c := &Client{
		fetcher:  fetcher,
		interval: cfg.Interval,
		limit:    cfg.Limit,
		breaker: resilience.NewCircuitBreaker("analytics-trending", resilience.CircuitBreakerConfig{
			FailureThreshold: 3,
			ResetTimeout:     2 * cfg.Interval,
		}),
		metrics: met,
		logger:  slog.Default().With("component", "trending"),
	}
	c.current.Store([]string(nil))
	return c
}

// Start refreshes once immediately, then on every tick until ctx is done.
func (c *Client) Start(ctx context.Context) {
	go func() {
		c.refresh(ctx)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refresh(ctx)
			}
		}
	}()
}

func (c *Client) refresh(ctx context.Context) {
	var queries []string
	err := c.breaker.Execute(func() error {
		var ferr error
		queries, ferr = c.fetcher.TopQueries(ctx, c.limit)
		return ferr
	})
	c.observeBreaker()
	if err != nil {
		if c.metrics != nil {
			c.metrics.TrendingRefreshTotal.WithLabelValues("error").Inc()
		}
		c.logger.Warn("trending refresh failed", "error", err)
		return
	}
	c.current.Store(queries)
	if c.metrics != nil {
		c.metrics.TrendingRefreshTotal.WithLabelValues("ok").Inc()
	}
	c.logger.Debug("trending refreshed", "count", len(queries))
}

func (c *Client) observeBreaker() {
	if c.metrics == nil {
		return
	}
	c.metrics.CircuitBreakerState.WithLabelValues("analytics-trending").Set(float64(c.breaker.GetState()))
}

// Current returns the latest snapshot, possibly empty.
func (c *Client) Current() []string {
	if c == nil {
		return nil
	}
	v, _ := c.current.Load().([]string)
	return v
}

// Blend appends up to two trending questions that are not already in base,
// comparing case-insensitively. The base slice is never mutated.
func (c *Client) Blend(base []string) []string {
	trending := c.Current()
	if len(trending) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[strings.ToLower(s)] = struct{}{}
	}
	out := make([]string, len(base), len(base)+maxBlended)
	copy(out, base)
	added := 0
	for _, q := range trending {
		if added == maxBlended {
			break
		}
		key := strings.ToLower(q)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
		added++
	}
	return out
}
