package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"stockmcp/internal/app"
)

// stdout carries protocol frames, so everything else goes to stderr.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("startup_failed", "error", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	// Metrics are collected but not exposed; there is no listener on stdio.
	svc, err := app.Setup(cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("failed to wire services", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("mcp_stdio_running")
	if err := svc.Server.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Error("stdio_error", "error", err)
		os.Exit(1)
	}
	logger.Info("mcp_stdio_stopped")
}
