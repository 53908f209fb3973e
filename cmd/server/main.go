package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stockmcp/internal/app"
	"stockmcp/internal/handlers"
)

func main() {
	// Missing credential aborts here, before anything is served
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("startup_failed", "error", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	logger.Info("mcp_service_starting",
		"port", cfg.Port,
		"timeout_ms", cfg.TimeoutMS,
		"upstream_timeout_ms", cfg.UpstreamTimeoutMS,
		"prometheus_port", cfg.PrometheusPort,
	)

	svc, err := app.Setup(cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Error("failed to wire services", "error", err)
		os.Exit(1)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Server:            svc.Server,
		Data:              svc.Client,
		Logger:            logger,
		Timeout:           cfg.Timeout(),
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Timeout() + 5*time.Second,
	}

	var metricsSrv *http.Server
	if cfg.PrometheusPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.PrometheusPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics_server_listening", "port", cfg.PrometheusPort)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics_server_error", "error", err)
			}
		}()
	}

	go func() {
		logger.Info("mcp_server_listening", "port", cfg.Port, "status", "healthy")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server_error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	// Graceful shutdown
	logger.Info("shutdown_signal_received", "signal", sig.String())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logger.Error("metrics_shutdown_error", "error", err)
		}
	}

	logger.Info("mcp_service_stopped")
}
