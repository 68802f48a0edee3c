package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dasbor/internal/ai"
	"dasbor/internal/amqp"
	"dasbor/internal/backend"
	"dasbor/internal/cache"
	"dasbor/internal/config"
	"dasbor/internal/core"
	"dasbor/internal/dashboard"
	apphttp "dasbor/internal/http"
	applog "dasbor/internal/log"
)

func main() {
	// Load .env for local development; production sets real environment.
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

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

	var answerer apphttp.Answerer
	if cfg.AIEnabled {
		advisor, err := ai.NewAdvisor(ctx, cfg.AIModel)
		if err != nil {
			logger.Error("Failed to initialize assistant", "error", err, "model", cfg.AIModel)
			os.Exit(1)
		}
		answerer = advisor
		logger.Info("Assistant enabled", "model", cfg.AIModel)
	}

	var publisher apphttp.Publisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, refresh endpoint disabled", "error", err)
		} else {
			defer amqpClient.Close()
			publisher = amqpClient
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	srv := apphttp.NewServer(":"+cfg.Port, assembler, answerer, publisher)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 60 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting dasbor server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
