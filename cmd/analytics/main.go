// Command analytics starts the standalone analytics aggregation service.
//
// It consumes chat events from Kafka, aggregates them in memory (match and
// fallback rates, latency percentiles, cache hit rate, top queries, unique
// sessions), snapshots the aggregate to PostgreSQL, and serves dashboards
// over HTTP at /stats. Trending questions are served to chatd over an
// internal JSON-over-TCP RPC endpoint.
//
// Usage:
//
//	go run ./cmd/analytics [-config configs/development.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1Percent-hub/ScholarHub/internal/analytics"
	"github.com/1Percent-hub/ScholarHub/internal/analytics/aggregator"
	"github.com/1Percent-hub/ScholarHub/pkg/config"
	"github.com/1Percent-hub/ScholarHub/pkg/grpc"
	"github.com/1Percent-hub/ScholarHub/pkg/health"
	"github.com/1Percent-hub/ScholarHub/pkg/kafka"
	"github.com/1Percent-hub/ScholarHub/pkg/logger"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	"github.com/1Percent-hub/ScholarHub/pkg/middleware"
	"github.com/1Percent-hub/ScholarHub/pkg/postgres"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup("analytics", cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting analytics service", "http_port", cfg.Analytics.HTTPPort, "rpc_port", cfg.Analytics.RPCPort)

	var met *metrics.Metrics
	var metricsShutdown func(context.Context) error
	if cfg.Metrics.Enabled {
		met = metrics.New()
		metricsShutdown = metrics.StartServer(cfg.Metrics.Port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg := analytics.NewAggregator(met)

	// The snapshot restore must land before the consumer records anything,
	// RestoreFrom overwrites counters.
	var db *postgres.Client
	var snapshots analytics.SnapshotStore
	db, err = postgres.New(cfg.Postgres)
	if err != nil {
		slog.Warn("postgres unavailable, snapshots disabled", "error", err)
		db = nil
	} else {
		defer db.Close()
		store := aggregator.NewStore(db, met)
		snapshots = store
		restoreCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if latest, err := store.LatestSnapshot(restoreCtx); err != nil {
			slog.Warn("snapshot restore failed, starting empty", "error", err)
		} else if latest != nil {
			agg.RestoreFrom(*latest)
		}
		cancel()
		store.StartPeriodicSave(ctx, agg, cfg.Analytics.SnapshotInterval)
	}

	consumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.ChatEvents, analytics.HandleEvent(agg))
	go func() {
		if err := consumer.Start(ctx); err != nil {
			slog.Error("kafka consumer error", "error", err)
		}
	}()
	slog.Info("chat event consumer started", "topic", cfg.Kafka.Topics.ChatEvents, "group", cfg.Kafka.ConsumerGroup)

	rpcServer := grpc.NewServer()
	analytics.RegisterRPC(rpcServer, agg)
	go func() {
		if err := rpcServer.Serve(fmt.Sprintf(":%d", cfg.Analytics.RPCPort)); err != nil {
			slog.Error("rpc server error", "error", err)
		}
	}()

	h := analytics.NewHandler(agg, snapshots)

	checker := health.NewChecker()
	checker.Register("postgres", func(ctx context.Context) health.ComponentHealth {
		if db == nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: "not configured"}
		}
		if err := db.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})
	checker.Register("rpc", func(ctx context.Context) health.ComponentHealth {
		if n := rpcServer.MethodCount(); n > 0 {
			return health.ComponentHealth{Status: health.StatusUp, Message: fmt.Sprintf("%d methods", n)}
		}
		return health.ComponentHealth{Status: health.StatusDown, Message: "no methods registered"}
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /stats", h.Stats)
	mux.HandleFunc("GET /stats/top-queries", h.TopQueries)
	mux.HandleFunc("GET /stats/snapshots", h.ListSnapshots)
	mux.HandleFunc("GET /stats/snapshots/latest", h.LatestSnapshot)
	mux.HandleFunc("GET /health/live", checker.LiveHandler())
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler())

	var chain http.Handler = mux
	chain = middleware.Timeout(cfg.Server.WriteTimeout)(chain)
	if met != nil {
		chain = middleware.Metrics(met)(chain)
	}
	chain = middleware.RequestID(chain)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Analytics.HTTPPort),
		Handler:      chain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
		rpcServer.Stop()
		if metricsShutdown != nil {
			if err := metricsShutdown(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown error", "error", err)
			}
		}
	}()

	slog.Info("analytics service listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("analytics service stopped")
}
