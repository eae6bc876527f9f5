package analytics

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/kafka"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
)

// AggregatedStats is a point-in-time view of chat traffic since the
// aggregator started.
type AggregatedStats struct {
	TotalMessages     int64            `json:"total_messages"`
	MatchedMessages   int64            `json:"matched_messages"`
	FallbackMessages  int64            `json:"fallback_messages"`
	SpecialtyMessages int64            `json:"specialty_messages"`
	MemoryMessages    int64            `json:"memory_messages"`
	EmptyMessages     int64            `json:"empty_messages"`
	MatchRate         float64          `json:"match_rate"`
	FallbackRate      float64          `json:"fallback_rate"`
	CacheHits         int64            `json:"cache_hits"`
	CacheMisses       int64            `json:"cache_misses"`
	AvgLatencyMs      float64          `json:"avg_latency_ms"`
	P50LatencyMs      int64            `json:"p50_latency_ms"`
	P95LatencyMs      int64            `json:"p95_latency_ms"`
	P99LatencyMs      int64            `json:"p99_latency_ms"`
	AvgScore          float64          `json:"avg_score"`
	TopQueries        []QueryCount     `json:"top_queries"`
	TopFallbacks      []QueryCount     `json:"top_fallbacks"`
	QuestionTypes     map[string]int64 `json:"question_types"`
	Topics            map[string]int64 `json:"topics"`
	UniqueSessions    int64            `json:"unique_sessions"`
	MessagesPerMinute float64          `json:"messages_per_minute"`
}

// QueryCount is one entry in a query ranking. Queries are the normalized
// form carried on events; raw text never reaches analytics.
type QueryCount struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Aggregator folds the chat event stream into live statistics. Counters
// are atomics; the latency samples and ranking maps sit behind a mutex.
type Aggregator struct {
	mu             sync.RWMutex
	totalMessages  atomic.Int64
	matched        atomic.Int64
	fallbacks      atomic.Int64
	specialty      atomic.Int64
	memoryCmds     atomic.Int64
	empty          atomic.Int64
	cacheHits      atomic.Int64
	cacheMisses    atomic.Int64
	scoreSum       atomic.Int64
	latencies      []int64
	queryCounts    map[string]int64
	fallbackCounts map[string]int64
	questionTypes  map[string]int64
	topicCounts    map[string]int64
	sessions       map[string]struct{}
	startTime      time.Time

	// Baselines carried over from a restored snapshot. Session hashes are
	// not persisted, so restored sessions survive only as a count.
	restoredMessages int64
	restoredSessions int64

	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewAggregator(m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		latencies:      make([]int64, 0, 10000),
		queryCounts:    make(map[string]int64),
		fallbackCounts: make(map[string]int64),
		questionTypes:  make(map[string]int64),
		topicCounts:    make(map[string]int64),
		sessions:       make(map[string]struct{}),
		startTime:      time.Now(),
		metrics:        m,
		logger:         slog.Default().With("component", "analytics-aggregator"),
	}
}

// RestoreFrom seeds the aggregator from a persisted snapshot so restarts
// keep cumulative totals. The restore is partial: latency samples and
// session hashes are never persisted, so percentiles restart empty and a
// session active on both sides of a restart counts twice. Of the query
// rankings only the snapshotted top entries carry over. Call before the
// consumer starts; record and RestoreFrom do not serialize counter writes
// against each other.
func (a *Aggregator) RestoreFrom(stats AggregatedStats) {
	a.totalMessages.Store(stats.TotalMessages)
	a.matched.Store(stats.MatchedMessages)
	a.fallbacks.Store(stats.FallbackMessages)
	a.specialty.Store(stats.SpecialtyMessages)
	a.memoryCmds.Store(stats.MemoryMessages)
	a.empty.Store(stats.EmptyMessages)
	a.cacheHits.Store(stats.CacheHits)
	a.cacheMisses.Store(stats.CacheMisses)
	a.scoreSum.Store(int64(stats.AvgScore*float64(stats.MatchedMessages) + 0.5))

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, qc := range stats.TopQueries {
		a.queryCounts[qc.Query] = qc.Count
	}
	for _, qc := range stats.TopFallbacks {
		a.fallbackCounts[qc.Query] = qc.Count
	}
	for t, n := range stats.QuestionTypes {
		a.questionTypes[t] = n
	}
	for t, n := range stats.Topics {
		a.topicCounts[t] = n
	}
	a.restoredMessages = stats.TotalMessages
	a.restoredSessions = stats.UniqueSessions

	a.logger.Info("aggregator restored from snapshot",
		"total_messages", stats.TotalMessages,
		"unique_sessions", stats.UniqueSessions,
	)
}

// HandleEvent adapts the aggregator to the Kafka consumer. Undecodable
// events are logged and skipped, never retried.
func HandleEvent(agg *Aggregator) kafka.MessageHandler {
	return func(ctx context.Context, key []byte, value []byte) error {
		event, err := kafka.DecodeJSON[ChatEvent](value)
		if err != nil {
			agg.logger.Error("failed to decode chat event", "error", err)
			return nil
		}
		agg.record(event)
		if agg.metrics != nil {
			agg.metrics.EventsConsumedTotal.Inc()
		}
		return nil
	}
}

func (a *Aggregator) record(event ChatEvent) {
	a.totalMessages.Add(1)
	switch event.Type {
	case EventChatMatched:
		a.matched.Add(1)
		a.scoreSum.Add(int64(event.Score))
	case EventChatFallback:
		a.fallbacks.Add(1)
	case EventChatSpecialty:
		a.specialty.Add(1)
	case EventSessionMemory:
		a.memoryCmds.Add(1)
	case EventChatRequest:
		a.empty.Add(1)
	}
	switch event.CacheStatus {
	case "hit":
		a.cacheHits.Add(1)
	case "miss":
		a.cacheMisses.Add(1)
	}

	a.mu.Lock()
	a.latencies = append(a.latencies, event.LatencyMs)
	if event.Normalized != "" {
		a.queryCounts[event.Normalized]++
		if event.Type == EventChatFallback {
			a.fallbackCounts[event.Normalized]++
		}
	}
	if event.QuestionType != "" {
		a.questionTypes[event.QuestionType]++
	}
	for _, topic := range event.Topics {
		a.topicCounts[topic]++
	}
	if event.SessionHash != "" {
		a.sessions[event.SessionHash] = struct{}{}
	}
	a.mu.Unlock()
}

// Stats snapshots the current aggregates. Match and fallback rates are
// over engine-answered messages only; memory and math replies do not move
// them.
func (a *Aggregator) Stats() AggregatedStats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stats := AggregatedStats{
		TotalMessages:     a.totalMessages.Load(),
		MatchedMessages:   a.matched.Load(),
		FallbackMessages:  a.fallbacks.Load(),
		SpecialtyMessages: a.specialty.Load(),
		MemoryMessages:    a.memoryCmds.Load(),
		EmptyMessages:     a.empty.Load(),
		CacheHits:         a.cacheHits.Load(),
		CacheMisses:       a.cacheMisses.Load(),
	}
	if engineTotal := stats.MatchedMessages + stats.FallbackMessages; engineTotal > 0 {
		stats.MatchRate = float64(stats.MatchedMessages) / float64(engineTotal)
		stats.FallbackRate = float64(stats.FallbackMessages) / float64(engineTotal)
	}
	if stats.MatchedMessages > 0 {
		stats.AvgScore = float64(a.scoreSum.Load()) / float64(stats.MatchedMessages)
	}
	if len(a.latencies) > 0 {
		sorted := make([]int64, len(a.latencies))
		copy(sorted, a.latencies)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum int64
		for _, l := range sorted {
			sum += l
		}
		stats.AvgLatencyMs = float64(sum) / float64(len(sorted))
		stats.P50LatencyMs = percentile(sorted, 50)
		stats.P95LatencyMs = percentile(sorted, 95)
		stats.P99LatencyMs = percentile(sorted, 99)
	}
	stats.TopQueries = topN(a.queryCounts, 10)
	stats.TopFallbacks = topN(a.fallbackCounts, 10)
	stats.QuestionTypes = copyCounts(a.questionTypes)
	stats.Topics = copyCounts(a.topicCounts)
	stats.UniqueSessions = a.restoredSessions + int64(len(a.sessions))
	elapsed := time.Since(a.startTime).Minutes()
	if elapsed > 0 {
		// Rate over this process's lifetime; restored history would skew it.
		stats.MessagesPerMinute = float64(stats.TotalMessages-a.restoredMessages) / elapsed
	}

	return stats
}

// TopQueries returns the n most frequent normalized queries.
func (a *Aggregator) TopQueries(n int) []QueryCount {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return topN(a.queryCounts, n)
}

func percentile(sorted []int64, pct int) int64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (pct * len(sorted)) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// topN ranks by count, breaking ties alphabetically so rankings are
// stable across calls.
func topN(counts map[string]int64, n int) []QueryCount {
	result := make([]QueryCount, 0, len(counts))
	for query, count := range counts {
		result = append(result, QueryCount{Query: query, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Query < result[j].Query
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}

func copyCounts(counts map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	return out
}
