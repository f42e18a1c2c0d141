// Package main provides the agriculture assistant API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/SYLESH-1125/SIH/internal/cache"
	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/engine"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("knowledge_source", cfg.Knowledge.Source).
		Str("cache", cfg.Cache.Driver).
		Msg("Starting agriculture assistant API")

	store := knowledge.Load(cfg.Knowledge, logger)

	opts := []engine.Option{}
	if client := newCacheClient(cfg.Cache, logger); client != nil {
		defer client.Close()
		opts = append(opts, engine.WithAnswerCache(client, cfg.Cache.TTL))
	}

	assistant, err := engine.New(store, cfg.Retrieval, logger, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize assistant")
	}

	router := NewRouter(logger, assistant, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

// newCacheClient builds the configured answer-cache client. Redis
// connection failures degrade to the in-memory cache rather than
// blocking startup.
func newCacheClient(cfg config.CacheConfig, logger *observability.Logger) cache.Client {
	switch cfg.Driver {
	case "redis":
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, falling back to memory cache")
			return cache.NewMemoryClient(cfg.MaxEntries)
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis answer cache connected")
		return client
	case "memory":
		return cache.NewMemoryClient(cfg.MaxEntries)
	default:
		return nil
	}
}
