// README: Entry point; loads config, wires services, starts HTTP server and the ingestion job.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"courierfee/internal/config"
	httptransport "courierfee/internal/http"
	"courierfee/internal/infra"
	"courierfee/internal/logging"
	"courierfee/internal/modules/fee"
	"courierfee/internal/modules/weather"
	"courierfee/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	store := weather.NewStore(dbPool)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Error("ensure schema failed", "error", err)
		os.Exit(1)
	}

	var source fee.ObservationSource = store
	var cache weather.LatestCache
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = infra.NewRedis(cfg.Redis.Addr)
		c := weather.NewCache(redisClient)
		cache = c
		source = weather.NewCachedSource(c, store, logger)
		logger.Info("observation cache enabled", "addr", cfg.Redis.Addr)
	}

	client := weather.NewClient(cfg.Ingest.FeedURL, cfg.Ingest.FetchTimeout)
	ingestor := weather.NewIngestor(client, store, cache, logger, metrics, clockwork.NewRealClock(), cfg.Ingest.Interval)

	feeSvc := fee.NewService(source, logger, metrics)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(feeSvc, logger),
	}

	go ingestor.Run(ctx)

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}
	logger.Info("shutdown complete")
}
