// Command gateway starts the API gateway service.
//
// The gateway is the single entry point for external clients. It proxies chat
// traffic to chatd and dashboard traffic to the analytics service, applies
// per-key rate limiting, authenticates the protected /stats and /admin routes
// via admin API keys (SHA-256 validated against PostgreSQL), and exposes
// admin endpoints for key management.
//
// Usage:
//
//	go run ./cmd/gateway [-config configs/development.yaml]
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

	"github.com/1Percent-hub/ScholarHub/internal/auth/apikey"
	"github.com/1Percent-hub/ScholarHub/internal/auth/ratelimit"
	gwhandler "github.com/1Percent-hub/ScholarHub/internal/gateway/handler"
	"github.com/1Percent-hub/ScholarHub/internal/gateway/router"
	"github.com/1Percent-hub/ScholarHub/pkg/config"
	"github.com/1Percent-hub/ScholarHub/pkg/logger"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	"github.com/1Percent-hub/ScholarHub/pkg/middleware"
	"github.com/1Percent-hub/ScholarHub/pkg/postgres"
)

// main initialises PostgreSQL, the API-key validator, the rate limiter, the
// gateway handler + router middleware chain, and starts the HTTP server.
// Graceful shutdown is triggered by SIGINT/SIGTERM.
func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup("gateway", cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting gateway service",
		"port", cfg.Gateway.Port,
		"chat_url", cfg.Gateway.ChatURL,
		"analytics_url", cfg.Gateway.AnalyticsURL,
	)

	var met *metrics.Metrics
	var metricsShutdown func(context.Context) error
	if cfg.Metrics.Enabled {
		met = metrics.New()
		metricsShutdown = metrics.StartServer(cfg.Metrics.Port)
	}

	// PostgreSQL backs admin API key validation.
	db, err := postgres.New(cfg.Postgres)
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("connected to postgres")

	validator := apikey.NewValidator(db)
	limiter := ratelimit.New(time.Minute)
	defer limiter.Close()

	h := gwhandler.New(gwhandler.Config{
		ChatURL:      cfg.Gateway.ChatURL,
		AnalyticsURL: cfg.Gateway.AnalyticsURL,
	}, validator)

	chain := router.New(h, validator, limiter, router.Options{
		AllowedOrigins: cfg.Gateway.AllowedOrigins,
		DefaultLimit:   cfg.Gateway.RateLimitPerMinute,
	})

	var handler http.Handler = chain
	if met != nil {
		handler = middleware.Metrics(met)(handler)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Gateway.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	slog.Info("gateway service listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("gateway service stopped")
}
