// Package proto defines the shared message types for internal RPC
// communication between services in ScholarHub. The types carry JSON
// struct tags because the RPC layer (see pkg/grpc) serializes requests
// and responses as newline-delimited JSON.
package proto

// ---------- Analytics ----------

// TopQueriesRequest is the input to the Analytics.TopQueries RPC.
type TopQueriesRequest struct {
	Limit int32 `json:"limit"`
}

// TopQueriesResponse is the output of the Analytics.TopQueries RPC.
type TopQueriesResponse struct {
	Queries     []QueryCount `json:"queries"`
	WindowStart int64        `json:"window_start"`
	GeneratedAt int64        `json:"generated_at"`
}

// QueryCount is a single entry in the trending-question ranking.
type QueryCount struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// StatsRequest is the input to the Analytics.Stats RPC.
type StatsRequest struct {
	WindowMinutes int32 `json:"window_minutes"`
}

// StatsResponse contains aggregate chat statistics for a window.
type StatsResponse struct {
	TotalMessages   int64   `json:"total_messages"`
	MatchedMessages int64   `json:"matched_messages"`
	FallbackRate    float64 `json:"fallback_rate"`
	AvgLatencyMs    float64 `json:"avg_latency_ms"`
	P95LatencyMs    float64 `json:"p95_latency_ms"`
	UniqueSessions  int64   `json:"unique_sessions"`
}
