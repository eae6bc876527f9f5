package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/grpc"
	"github.com/1Percent-hub/ScholarHub/pkg/proto"
)

// RegisterRPC exposes the aggregator over the internal RPC server. The
// chat service's trending client is the primary consumer.
func RegisterRPC(srv *grpc.Server, agg *Aggregator) {
	srv.Register("Analytics.TopQueries", topQueriesRPC(agg))
	srv.Register("Analytics.Stats", statsRPC(agg))
}

func topQueriesRPC(agg *Aggregator) grpc.HandlerFunc {
	return func(ctx context.Context, params json.RawMessage) (any, error) {
		var req proto.TopQueriesRequest
		if len(params) > 0 {
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, fmt.Errorf("decoding top queries request: %w", err)
			}
		}
		limit := int(req.Limit)
		if limit <= 0 {
			limit = 10
		}
		if limit > 100 {
			limit = 100
		}

		counts := agg.TopQueries(limit)
		resp := &proto.TopQueriesResponse{
			Queries:     make([]proto.QueryCount, 0, len(counts)),
			WindowStart: agg.startTime.Unix(),
			GeneratedAt: time.Now().Unix(),
		}
		for _, qc := range counts {
			resp.Queries = append(resp.Queries, proto.QueryCount{Query: qc.Query, Count: qc.Count})
		}
		return resp, nil
	}
}

func statsRPC(agg *Aggregator) grpc.HandlerFunc {
	return func(ctx context.Context, params json.RawMessage) (any, error) {
		stats := agg.Stats()
		return &proto.StatsResponse{
			TotalMessages:   stats.TotalMessages,
			MatchedMessages: stats.MatchedMessages,
			FallbackRate:    stats.FallbackRate,
			AvgLatencyMs:    stats.AvgLatencyMs,
			P95LatencyMs:    float64(stats.P95LatencyMs),
			UniqueSessions:  stats.UniqueSessions,
		}, nil
	}
}
