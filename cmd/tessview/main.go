// Package main is the entry point for the tessellation viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/app"
	"github.com/Faultbox/tessview/internal/config"
	"github.com/Faultbox/tessview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, path, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	corrections := cfg.Validate()

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	log.Info("=== Tessellation Viewer ===")
	if path != "" {
		log.Info("loaded config", zap.String("path", path))
	}
	for _, msg := range corrections {
		log.Warn("config corrected", zap.String("reason", msg))
	}
	log.Debug("config", zap.Any("config", cfg))

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			log.Error("failed to save config", zap.Error(err))
			logger.Sync(log)
			os.Exit(1)
		}
		log.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("viewer error", zap.Error(err))
		logger.Sync(log)
		os.Exit(1)
	}
	log.Info("viewer closed normally")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	a, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
