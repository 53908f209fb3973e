package app

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"stockmcp/internal/config"
	"stockmcp/internal/instrumentation"
	"stockmcp/internal/marketdata"
	"stockmcp/internal/mcp"
)

// Services is the wired core shared by every transport binary.
type Services struct {
	Logger  *slog.Logger
	Metrics *instrumentation.Metrics
	Client  *marketdata.Client
	Invoker *mcp.ToolInvoker
	Server  *mcp.Server
}

// NewLogger builds the JSON slog logger for cfg writing to w.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// NewUpstreamHTTPClient returns the HTTP client used for provider calls.
func NewUpstreamHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// Setup wires the market data client, tool dispatcher and protocol server.
// Metrics are registered with reg.
func Setup(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Services, error) {
	metrics := instrumentation.NewMetrics(reg)

	client, err := marketdata.NewClient(cfg.APIKey,
		marketdata.WithBaseURL(cfg.BaseURL),
		marketdata.WithHTTPClient(NewUpstreamHTTPClient(cfg.UpstreamTimeout())),
		marketdata.WithRecorder(metrics),
		marketdata.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("creating market data client: %w", err)
	}

	invoker, err := mcp.NewToolInvoker(mcp.NewToolExecutor(client),
		mcp.WithCallRecorder(metrics),
		mcp.WithInvokerLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tool invoker: %w", err)
	}

	return &Services{
		Logger:  logger,
		Metrics: metrics,
		Client:  client,
		Invoker: invoker,
		Server:  mcp.NewServer(invoker, logger),
	}, nil
}

// LoadConfig loads and validates configuration from the environment.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
