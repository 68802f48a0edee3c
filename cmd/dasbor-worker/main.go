package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dasbor/internal/amqp"
	"dasbor/internal/backend"
	"dasbor/internal/cache"
	"dasbor/internal/config"
	"dasbor/internal/core"
	"dasbor/internal/dashboard"
	applog "dasbor/internal/log"
	"dasbor/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	applog.SetDefault(logger)

	logger.Info("Starting dasbor-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, err := backend.New(ctx, cfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize table source", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if source.Cleanup != nil {
		defer source.Cleanup()
	}

	snapshotCache := cache.NewLRUCache[*dashboard.Snapshot](cfg.CacheMaxEntries, cfg.CacheTTL)
	cacheManager := cache.NewManager()
	cacheManager.Register(snapshotCache)
	cacheManager.StartCleanup(cfg.CacheCleanupTick)
	defer cacheManager.Stop()

	assembler := dashboard.NewAssembler(source.Reader, snapshotCache, core.NewDefaultEngine(), cfg.CacheMaxPayload)
	refreshWorker := worker.NewRefreshWorker(assembler, cfg.WarmPeriods)

	// Consume refresh requests when a broker is configured; otherwise run on
	// the schedule alone.
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()

		go func() {
			for {
				err := amqpClient.ConsumeRefresh(ctx, func(msg *amqp.RefreshMessage) error {
					return refreshWorker.HandleRefreshMessage(ctx, msg)
				})
				if err == context.Canceled || ctx.Err() != nil {
					return
				}
				logger.Error("Message consumption stopped, reconnecting", "error", err)
				if err := amqpClient.Reconnect(ctx); err != nil {
					logger.Error("Reconnect failed, giving up", "error", err)
					cancel()
					return
				}
			}
		}()
	} else {
		logger.Info("No AMQP URL configured, running scheduled refresh only")
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	if err := refreshWorker.Run(ctx, cfg.RefreshInterval); err != nil && err != context.Canceled {
		logger.Error("Refresh loop failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
