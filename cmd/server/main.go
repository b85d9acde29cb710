package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/document"
	"github.com/reqgen/audiodoc/internal/generation"
	"github.com/reqgen/audiodoc/internal/logger"
	"github.com/reqgen/audiodoc/internal/server"
	"github.com/reqgen/audiodoc/internal/summarizer"
	"github.com/reqgen/audiodoc/internal/transcriber"
	"github.com/reqgen/audiodoc/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Optional .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Document Backend")
	log.Info(ctx, "========================================")

	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		log.Error(ctx, "Failed to create upload dir: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	registry := generation.NewRegistry(cfg.Generation, log)
	tr := transcriber.New(exec, cfg.Whisper, log)
	sum := summarizer.New(registry, cfg.Summary, log)
	srv := server.New(cfg, log, tr, sum, registry, document.New())

	// Warm the generation backend so the first request pays no startup cost
	if err := registry.Preload(ctx); err != nil {
		log.Warn(ctx, "Generation backend preload failed: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Server starting on http://%s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Audio Document Backend stopped")
}
