package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/document"
	"github.com/reqgen/audiodoc/internal/generation"
	"github.com/reqgen/audiodoc/internal/logger"
	"github.com/reqgen/audiodoc/internal/processor"
	"github.com/reqgen/audiodoc/internal/summarizer"
	"github.com/reqgen/audiodoc/internal/transcriber"
	"github.com/reqgen/audiodoc/internal/watcher"
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
	log.Info(ctx, "Audio Document Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	registry := generation.NewRegistry(cfg.Generation, log)
	tr := transcriber.New(exec, cfg.Whisper, log)
	sum := summarizer.New(registry, cfg.Summary, log)
	proc := processor.New(cfg, tr, sum, document.New(), log)

	w, err := watcher.New(cfg.Paths.Input, cfg.Upload.AllowedExtensions, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "")
	log.Info(ctx, "  - Whisper: %d threads, beam size %d", cfg.Whisper.Threads, cfg.Whisper.BeamSize)
	log.Info(ctx, "  - Generation: %s (%s)", cfg.Generation.Provider, cfg.Generation.Model)
	log.Info(ctx, "  - Concurrent: %d files at once", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Audio Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
