// Package cache memoizes the deterministic half of answering: which
// knowledge entry wins for a query, at what score, on which pass. Reply
// variant selection stays out of the cache so repeated questions keep
// their variety. Keys are derived from the normalized query, entries are
// stored by position in the knowledge slice, and no-match outcomes are
// cached too.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/1Percent-hub/ScholarHub/internal/engine"
	"github.com/1Percent-hub/ScholarHub/internal/engine/text"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
	"github.com/1Percent-hub/ScholarHub/pkg/config"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	pkgredis "github.com/1Percent-hub/ScholarHub/pkg/redis"
)

const keyPrefix = "chat:"

// Cache outcome reported to callers, for logs and analytics events.
const (
	StatusHit    = "hit"
	StatusMiss   = "miss"
	StatusBypass = "bypass"
)

// cachedMatch is the Redis payload. Entry is the winner's position in the
// knowledge slice, or -1 when nothing matched.
type cachedMatch struct {
	Entry int `json:"entry"`
	Score int `json:"score"`
	Pass  int `json:"pass"`
}

// MatchCache caches match outcomes in Redis with singleflight suppression
// of duplicate computes. A nil Redis client turns the cache into a pure
// pass-through; Redis trouble degrades to direct computation.
type MatchCache struct {
	client  *pkgredis.Client
	cfg     config.RedisConfig
	entries []*knowledge.Entry
	index   map[*knowledge.Entry]int
	group   singleflight.Group
	metrics *metrics.Metrics
	logger  *slog.Logger
	hits    atomic.Int64
	misses  atomic.Int64
}

// New builds a MatchCache over the knowledge slice the engine was built
// from. The slice must be the same one: cached positions are resolved
// against it.
func New(client *pkgredis.Client, cfg config.RedisConfig, entries []*knowledge.Entry, m *metrics.Metrics) *MatchCache {
	index := make(map[*knowledge.Entry]int, len(entries))
	for i, e := range entries {
		index[e] = i
	}
	return &MatchCache{
		client:  client,
		cfg:     cfg,
		entries: entries,
		index:   index,
		metrics: m,
		logger:  slog.Default().With("component", "match-cache"),
	}
}

// GetOrCompute returns the match outcome for query, computing and caching
// it on a miss. Concurrent callers with the same key share one compute.
// The returned status is one of StatusHit, StatusMiss, StatusBypass.
func (c *MatchCache) GetOrCompute(ctx context.Context, query string, computeFn func() (engine.Match, bool)) (engine.Match, bool, string) {
	if c.client == nil {
		m, ok := computeFn()
		return m, ok, StatusBypass
	}
	key := c.buildKey(query)
	if m, ok, found := c.get(ctx, key); found {
		return m, ok, StatusHit
	}

	type outcome struct {
		match engine.Match
		ok    bool
		hit   bool
	}
	val, _, _ := c.group.Do(key, func() (interface{}, error) {
		if m, ok, found := c.get(ctx, key); found {
			return outcome{match: m, ok: ok, hit: true}, nil
		}
		m, ok := computeFn()
		c.set(ctx, key, m, ok)
		return outcome{match: m, ok: ok}, nil
	})
	out := val.(outcome)
	if out.hit {
		return out.match, out.ok, StatusHit
	}
	return out.match, out.ok, StatusMiss
}

// Invalidate removes every cached match. Called when the knowledge base
// changes shape between releases.
func (c *MatchCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	deleted, err := c.client.FlushByPattern(ctx, keyPrefix+"*")
	if err != nil {
		return fmt.Errorf("invalidating match cache: %w", err)
	}
	c.logger.Info("match cache invalidated", "keys_deleted", deleted)
	return nil
}

// Stats returns the hit and miss counts since startup.
func (c *MatchCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// get returns the cached match for key and whether the key was present.
// Any Redis or decode trouble counts as a miss.
func (c *MatchCache) get(ctx context.Context, key string) (engine.Match, bool, bool) {
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Warn("cache get failed", "key", key, "error", err)
		}
		c.miss()
		return engine.Match{}, false, false
	}
	var cm cachedMatch
	if err := json.Unmarshal([]byte(data), &cm); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		c.miss()
		return engine.Match{}, false, false
	}
	if cm.Entry < 0 {
		c.hit()
		return engine.Match{}, false, true
	}
	if cm.Entry >= len(c.entries) {
		// Stale position from an older knowledge base.
		c.miss()
		return engine.Match{}, false, false
	}
	c.hit()
	return engine.Match{Entry: c.entries[cm.Entry], Score: cm.Score, Pass: cm.Pass}, true, true
}

func (c *MatchCache) set(ctx context.Context, key string, m engine.Match, ok bool) {
	cm := cachedMatch{Entry: -1}
	if ok {
		idx, found := c.index[m.Entry]
		if !found {
			c.logger.Error("match entry not in knowledge slice", "key", key)
			return
		}
		cm = cachedMatch{Entry: idx, Score: m.Score, Pass: m.Pass}
	}
	data, err := json.Marshal(cm)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.cfg.CacheTTL); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *MatchCache) hit() {
	c.hits.Add(1)
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.Inc()
	}
}

func (c *MatchCache) miss() {
	c.misses.Add(1)
	if c.metrics != nil {
		c.metrics.CacheMissesTotal.Inc()
	}
}

func (c *MatchCache) buildKey(query string) string {
	normalized := text.Normalize(query)
	hash := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%s%x", keyPrefix, hash[:16])
}
