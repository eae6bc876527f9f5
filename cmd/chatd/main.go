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

	"github.com/1Percent-hub/ScholarHub/internal/analytics"
	"github.com/1Percent-hub/ScholarHub/internal/chat/cache"
	chathandler "github.com/1Percent-hub/ScholarHub/internal/chat/handler"
	"github.com/1Percent-hub/ScholarHub/internal/chat/responder"
	"github.com/1Percent-hub/ScholarHub/internal/chat/trending"
	"github.com/1Percent-hub/ScholarHub/internal/engine"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
	"github.com/1Percent-hub/ScholarHub/internal/session"
	"github.com/1Percent-hub/ScholarHub/pkg/config"
	"github.com/1Percent-hub/ScholarHub/pkg/errors"
	"github.com/1Percent-hub/ScholarHub/pkg/health"
	"github.com/1Percent-hub/ScholarHub/pkg/kafka"
	"github.com/1Percent-hub/ScholarHub/pkg/logger"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	"github.com/1Percent-hub/ScholarHub/pkg/middleware"
	pkgredis "github.com/1Percent-hub/ScholarHub/pkg/redis"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup("chatd", cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting chat service", "port", cfg.Server.Port)

	entries := knowledge.Load()
	if len(entries) == 0 {
		slog.Error("refusing to start", "error", errors.ErrKnowledgeEmpty)
		os.Exit(1)
	}
	eng := engine.New(entries)
	slog.Info("knowledge base loaded", "entries", len(entries))

	var met *metrics.Metrics
	var metricsShutdown func(context.Context) error
	if cfg.Metrics.Enabled {
		met = metrics.New()
		metricsShutdown = metrics.StartServer(cfg.Metrics.Port)
	}

	var redisClient *pkgredis.Client
	var matchCache *cache.MatchCache
	redisClient, err = pkgredis.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, match caching disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		matchCache = cache.New(redisClient, cfg.Redis, entries, met)
		slog.Info("match cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}

	store, err := newSessionStore(cfg, redisClient)
	if err != nil {
		slog.Error("failed to create session store", "backend", cfg.Sessions.Backend, "error", err)
		os.Exit(1)
	}
	sessions := session.NewManager(store)
	slog.Info("session store ready", "backend", cfg.Sessions.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.ChatEvents)
	defer producer.Close()
	collector := analytics.NewCollector(producer, met, 0)
	collector.Start(ctx)
	defer func() {
		collector.Close()
		if n := collector.Dropped(); n > 0 {
			slog.Warn("chat events dropped under load", "count", n)
		}
	}()
	slog.Info("analytics collector started", "topic", cfg.Kafka.Topics.ChatEvents)

	var trend *trending.Client
	if cfg.Chat.TrendingRefresh > 0 {
		rpcAddr := cfg.Analytics.RPCAddr()
		trend = trending.New(trending.RPCFetcher(rpcAddr), trending.Config{
			Interval: cfg.Chat.TrendingRefresh,
			Limit:    cfg.Chat.TrendingLimit,
		}, met)
		trend.Start(ctx)
		slog.Info("trending client started", "rpc_addr", rpcAddr, "interval", cfg.Chat.TrendingRefresh)
	}

	chain := responder.Chain{
		responder.NewMemory(sessions, met),
		responder.NewMath(),
		responder.NewEngine(eng, matchCache, met),
	}
	h := chathandler.New(chain, sessions, trend, collector, met, cfg.Chat.MaxMessageLength)

	checker := health.NewChecker()
	checker.Register("knowledge", func(ctx context.Context) health.ComponentHealth {
		if n := len(entries); n > 0 {
			return health.ComponentHealth{Status: health.StatusUp, Message: fmt.Sprintf("%d entries", n)}
		}
		return health.ComponentHealth{Status: health.StatusDown, Message: "empty knowledge base"}
	})
	checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
		if redisClient == nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: "not configured"}
		}
		if err := redisClient.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", h.Chat)
	mux.HandleFunc("GET /api/suggest", h.Suggest)
	mux.HandleFunc("GET /health/live", checker.LiveHandler())
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler())

	var httpChain http.Handler = mux
	httpChain = middleware.Timeout(cfg.Server.WriteTimeout)(httpChain)
	if met != nil {
		httpChain = middleware.Metrics(met)(httpChain)
	}
	httpChain = middleware.RequestID(httpChain)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpChain,
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
		if metricsShutdown != nil {
			if err := metricsShutdown(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown error", "error", err)
			}
		}
	}()

	slog.Info("chat service listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("chat service stopped")
}

// newSessionStore picks the session backend from config: in-process memory,
// a JSON file, or Redis when available.
func newSessionStore(cfg *config.Config, redisClient *pkgredis.Client) (session.Store, error) {
	switch cfg.Sessions.Backend {
	case "", "memory":
		return session.NewMemoryStore(), nil
	case "file":
		return session.NewFileStore(cfg.Sessions.FilePath)
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("redis session backend selected but redis is unavailable")
		}
		return session.NewRedisStore(redisClient, cfg.Sessions.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Sessions.Backend)
	}
}
